package gsl

import (
	"fmt"
	"net/http"
)

// The client reports exactly three kinds of failure. Callers that only need
// a display string use Error(); callers that need to discriminate use
// errors.As.

// TransportError wraps a failure that happened before any response was
// obtained (DNS, timeout, TLS, connection reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response from the listings API.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// EmptyBodyError is a 2xx response whose body is missing or not parseable
// as the expected payload.
type EmptyBodyError struct {
	Reason string
}

func (e *EmptyBodyError) Error() string {
	if e.Reason != "" {
		return "empty or unparseable response body: " + e.Reason
	}
	return "empty response body"
}
