package provider

import "fmt"

// UpstreamError reports a network failure or a non-success HTTP status from
// an upstream API.
type UpstreamError struct {
	Provider string
	Op       string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s: upstream unavailable: %v", e.Provider, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MalformedError reports a response body that arrived but lacks required
// fields or has an unrecognized shape.
type MalformedError struct {
	Provider string
	Op       string
	Reason   string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s: malformed response: %s", e.Provider, e.Op, e.Reason)
}

// NotFoundError reports an identifier that does not exist in an already
// successfully fetched collection. It is never retried.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
