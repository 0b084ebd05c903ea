// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by API clients.
package httputil

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout is the request timeout applied when a config leaves it unset.
const DefaultTimeout = 30 * time.Second

// NewClient returns an HTTP client with the given request timeout. A zero
// or negative timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Do waits for limiter permission, executes req exactly once, and returns
// the response. A nil limiter skips the wait. There is deliberately no
// retry path here: callers surface failures instead of recovering locally.
func Do(ctx context.Context, client *http.Client, limiter *rate.Limiter, req *http.Request) (*http.Response, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	return client.Do(req.Clone(ctx))
}
