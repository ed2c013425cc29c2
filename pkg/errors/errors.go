// Package errors provides the structured error type used by the command-line
// tool and the interactive interpreter.
//
// The graph packages themselves report failures with panics (programming
// errors), (value, false) results (infeasible sizes), sentinel errors and
// [graph.ConsistencyError]. The outer surfaces translate those into an
// [Error] carrying a machine-readable [Code] so that the CLI can choose exit
// statuses and the interpreter can print one-line messages.
//
// # Error Codes
//
//   - INVALID_*: the user supplied something malformed
//   - NOT_*: a named thing is missing or lacks a required property
//   - INFEASIBLE: the input is valid but too large to analyze
//   - INCONSISTENT_GRAPH: a graph failed its adjacency check
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "no graph named %q", name)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // suggest "list"
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "read %s", path)
package errors

import (
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
	ErrCodeInvalidName   Code = "INVALID_NAME"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Missing resources and properties
	ErrCodeNotFound   Code = "NOT_FOUND"
	ErrCodeNotRegular Code = "NOT_REGULAR"

	// Analysis limits
	ErrCodeInfeasible        Code = "INFEASIBLE"
	ErrCodeInconsistentGraph Code = "INCONSISTENT_GRAPH"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// For *Error types, returns the message, followed by the cause when there is
// one, without the code prefix. For other errors, returns the error string.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}

// InfeasibleError reports that an analysis refused a graph because of its
// size.
type InfeasibleError struct {
	Analysis string // e.g. "cheeger"
	Order    int    // Order of the rejected graph; -1 when unbounded
	Limit    int    // Largest accepted order
}

// Error implements the error interface.
func (e *InfeasibleError) Error() string {
	if e.Order < 0 {
		return fmt.Sprintf("%s: graph has no finite order", e.Analysis)
	}
	return fmt.Sprintf("%s: order %d exceeds limit %d", e.Analysis, e.Order, e.Limit)
}

// Code returns the error code for this error type.
func (e *InfeasibleError) Code() Code {
	return ErrCodeInfeasible
}
