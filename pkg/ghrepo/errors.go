package ghrepo

import (
	"fmt"
	"net/http"
)

// RequestError reports that the request could not be sent or the response
// could not be fully received (DNS failure, refused connection, TLS error,
// transport-level timeout).
type RequestError struct {
	Cause error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("send request failed: %v", e.Cause)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error { return e.Cause }

// StatusError reports a completed request that returned a status outside
// the 200-299 range. The response body is never read for these responses,
// so there is no underlying cause to chain.
type StatusError struct {
	Code int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if text := http.StatusText(e.Code); text != "" {
		return fmt.Sprintf("non-success status: %d %s", e.Code, text)
	}
	return fmt.Sprintf("non-success status: %d", e.Code)
}

// DecodeError reports a response body that did not match the expected
// repository schema: malformed JSON, a missing required field, a type
// mismatch, or an unrecognized owner kind.
type DecodeError struct {
	Cause error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response failed: %v", e.Cause)
}

// Unwrap returns the underlying decode error.
func (e *DecodeError) Unwrap() error { return e.Cause }
