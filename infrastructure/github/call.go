package github

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Unit is the result of operations whose response body is discarded;
// only overall success or failure is reported.
type Unit struct{}

// Call describes a single API request. Building a Call performs no work;
// Do executes exactly one network round trip. Independent calls may run
// concurrently, they share no mutable state.
type Call[T any] struct {
	client *Client
	method string
	path   string
	token  string
	body   any
	decode func([]byte) (T, error)

	// resolved short-circuits Do; set only by ResolvedCall.
	resolved func() (T, error)
}

// Do performs the request and decodes the response. Non-success statuses
// surface as *StatusError, malformed bodies as *DecodeError; both propagate
// unchanged to the caller.
func (c *Call[T]) Do(ctx context.Context) (T, error) {
	if c.resolved != nil {
		return c.resolved()
	}
	var zero T
	raw, err := c.client.do(ctx, c.method, c.path, c.token, c.body)
	if err != nil {
		return zero, err
	}
	return c.decode(raw)
}

// ResolvedCall returns a Call that performs no network traffic and yields
// the given value and error when run. Substitute repository implementations
// use it to script operation results.
func ResolvedCall[T any](value T, err error) *Call[T] {
	return &Call[T]{
		resolved: func() (T, error) {
			return value, err
		},
	}
}

// decodeJSON returns a decoder that unmarshals the response body into T,
// tagging failures with the resource name.
func decodeJSON[T any](resource string) func([]byte) (T, error) {
	return func(raw []byte) (T, error) {
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			return value, &DecodeError{Resource: resource, Err: err}
		}
		return value, nil
	}
}

// discardBody ignores the response body entirely.
func discardBody([]byte) (Unit, error) {
	return Unit{}, nil
}

// escapePath percent-encodes each segment of a slash-separated path value
// (repository reference, branch name, file path) while keeping the
// separators. Segments are never interpreted, only encoded.
func escapePath(value string) string {
	segments := strings.Split(value, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
