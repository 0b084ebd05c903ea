// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package finder selects the most recently published paper matching a topic
// within a trailing seven-day window.
package finder

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pdiddy/paperwatch/pkg/types"
)

// Finder runs one window-filtered search against the paper search service
// and picks the freshest record.
type Finder struct {
	client *SemanticClient
}

// New returns a Finder configured from cfg.
func New(cfg types.FinderConfig) *Finder {
	return &Finder{client: NewSemanticClient(cfg)}
}

// FindMostRecent queries for papers matching topic published within the
// seven days ending on referenceDate and returns the record with the most
// recent effective date. A nil record with a nil error means no paper
// matched the window. Transport and remote failures propagate unmodified;
// there is no retry and no partial result.
func (f *Finder) FindMostRecent(ctx context.Context, topic string, referenceDate time.Time) (*types.PaperRecord, error) {
	window := NewSearchWindow(referenceDate)

	records, err := f.client.Search(ctx, topic, window)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Stable sort keeps the service's order for records with equal keys.
	sort.SliceStable(records, func(i, j int) bool {
		return effectiveDateKey(records[i]) > effectiveDateKey(records[j])
	})
	return &records[0], nil
}

// effectiveDateKey ranks a record by its publication date, falling back to
// January 1 of its year. A record with neither sorts as "0-01-01", below
// anything with real date information. ISO-8601 date strings compare
// correctly as text.
func effectiveDateKey(r types.PaperRecord) string {
	if r.PublicationDate != "" {
		return r.PublicationDate
	}
	return fmt.Sprintf("%d-01-01", r.Year)
}
