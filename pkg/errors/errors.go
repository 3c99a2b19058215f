// Package errors provides structured error types for stackcheck.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// Rejected candidate solutions are not errors. A verdict is a value
// produced by the checker; the codes here cover malformed input,
// configuration problems and internal failures such as a check that ran
// past its deadline.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "line %d: bad ship id %q", n, s)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // stop reading
//	}
//
//	err := errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "case %d", n)
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Execution errors
	ErrCodeTimeout  Code = "TIMEOUT"
	ErrCodeInternal Code = "INTERNAL_ERROR"
	ErrCodeStorage  Code = "STORAGE_ERROR"
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

// CodeOf is GetCode for reporting: a deadline anywhere in the chain is a
// timeout, and an uncoded error is internal.
func CodeOf(err error) Code {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}
	if code := GetCode(err); code != "" {
		return code
	}
	return ErrCodeInternal
}

// FromContext wraps the error of an interrupted operation: TIMEOUT when its
// deadline passed, INTERNAL_ERROR when it was cancelled or failed otherwise.
func FromContext(err error, format string, args ...any) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(ErrCodeTimeout, err, format, args...)
	}
	return Wrap(ErrCodeInternal, err, format, args...)
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
