// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for paperwatch.
package types

// PaperRecord is one paper as returned by the search service, decoded once
// at the API boundary and never mutated afterwards. Every field beyond the
// title may be absent: absent text fields are empty strings and an absent
// year is zero.
type PaperRecord struct {
	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// URL is the paper's landing page on the search service, if known.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Venue is the publication venue, if known.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Year is the publication year, or zero when the source omits it.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// PublicationDate is the full publication date in ISO-8601 form
	// (YYYY-MM-DD). It may be empty even when Year is set.
	PublicationDate string `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`
}
