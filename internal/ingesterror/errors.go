// Package ingesterror defines typed errors for source resolution and
// fetching so callers can distinguish a bad reference from a transport
// failure.
package ingesterror

import "fmt"

// ReferenceError indicates a source reference that could not be turned into
// a fetchable endpoint.
type ReferenceError struct {
	Ref    string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("unusable source reference %q: %s", e.Ref, e.Reason)
}

// NewReferenceError creates a ReferenceError for the given reference.
func NewReferenceError(ref, reason string) *ReferenceError {
	return &ReferenceError{Ref: ref, Reason: reason}
}

// FetchError indicates a failure retrieving a resolved endpoint. StatusCode
// is zero when the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a FetchError wrapping an underlying transport error.
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{URL: url, StatusCode: statusCode, Err: err}
}
