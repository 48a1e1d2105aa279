// Package apperrors provides structured error types for the ghinfo CLI.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across commands
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := apperrors.New(apperrors.ErrCodeInvalidRepoRef, "invalid reference: %s", ref)
//	if apperrors.Is(err, apperrors.ErrCodeInvalidRepoRef) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := apperrors.Wrap(apperrors.ErrCodeNetwork, origErr, "fetch %s/%s", owner, repo)
package apperrors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeInvalidRepoRef marks malformed owner/repo input.
	ErrCodeInvalidRepoRef Code = "INVALID_REPO_REF"

	// ErrCodeNotFound marks a repository the API reported as missing.
	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeNetwork marks transport failures (DNS, connection, timeout).
	ErrCodeNetwork Code = "NETWORK_ERROR"

	// ErrCodeUpstreamStatus marks non-2xx API responses other than 404.
	ErrCodeUpstreamStatus Code = "UPSTREAM_STATUS"

	// ErrCodeDecode marks API responses that did not match the schema.
	ErrCodeDecode Code = "DECODE_ERROR"

	// ErrCodeInternal marks unexpected internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
