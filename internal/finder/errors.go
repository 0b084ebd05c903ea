// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package finder

import (
	"errors"
	"fmt"
)

// TransportError reports that the search request could not be sent or that
// no response arrived within the timeout. It is never retried locally; the
// caller decides what to do with it.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("search request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports that the search service answered with a non-success
// status.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("search service returned HTTP %d", e.StatusCode)
}

// IsTransport returns true if err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRemote returns true if err is a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
