package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork matches every NetworkError.
	ErrNetwork = errors.New("network error")
	// ErrRateLimited matches every RateLimitedError.
	ErrRateLimited = errors.New("rate limited")
)

// NetworkError is an unreachable host, a timeout, or a non-2xx status other
// than 429.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error fetching %s: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// RateLimitedError is an HTTP 429 response.
type RateLimitedError struct {
	URL        string
	RetryAfter string
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("rate limited fetching %s (retry after %s)", e.URL, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited fetching %s", e.URL)
}

func (e *RateLimitedError) Is(target error) bool { return target == ErrRateLimited }
