// Package xtream implements a client for Xtream-Codes-compatible IPTV panel APIs.
package xtream

import "fmt"

// RequestError reports a transport-level failure against a panel endpoint:
// connection failures, timeouts, and non-2xx responses.
type RequestError struct {
	Provider string
	Action   string
	Status   int
	Err      error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s returned status %d", e.Provider, e.Action, e.Status)
	}
	return fmt.Sprintf("%s: %s request failed: %v", e.Provider, e.Action, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that is not the expected JSON structure.
// Panels are loosely versioned, so a successful request may still carry an
// HTML error page or a JSON object where an array is expected.
type DecodeError struct {
	Provider string
	Action   string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected %s response: %v", e.Provider, e.Action, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
