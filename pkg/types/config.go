// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared settings for outbound HTTP requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paperwatch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FinderConfig holds settings for the paper finder.
type FinderConfig struct {
	HTTPConfig `yaml:",inline"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	// Unauthenticated requests share the public pool.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// RequestsPerSecond caps the outbound request rate (default 1, the
	// unauthenticated Semantic Scholar limit).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}
