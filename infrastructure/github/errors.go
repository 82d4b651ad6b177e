package github

import "fmt"

// StatusError reports a non-success HTTP status from the API. The status
// code and raw response body stay accessible to the caller; Error keeps a
// single flat diagnostic string.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// DecodeError reports a response body that did not match the expected
// shape, including a field that failed to parse (e.g. a malformed
// timestamp).
type DecodeError struct {
	Resource string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
