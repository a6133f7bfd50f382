// Package errors provides structured error types for the Graphscape engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library surface
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each code names one failure category of a layout invocation:
//   - MALFORMED_GRAPH: interchange text violates the grammar or references
//     out-of-range node indices
//   - INVALID_PARAMETERS: algorithm parameters outside their legal range
//   - UNKNOWN_ALGORITHM: algorithm name not recognized and no delegate bound
//   - NUMERIC_DEGENERACY: numerical procedure failed on degenerate input
//   - INVALID_PATH: CLI input/output path rejected
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedGraph, "edge %d-%d out of range", s, t)
//	if errors.Is(err, errors.ErrCodeMalformedGraph) {
//	    // Handle grammar violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPath, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure categories of a layout invocation.
const (
	// ErrCodeMalformedGraph reports interchange text that violates the
	// nodes:/edges: grammar or references node indices outside [0, nodeCount).
	ErrCodeMalformedGraph Code = "MALFORMED_GRAPH"

	// ErrCodeInvalidParameters reports algorithm parameters outside their
	// legal range (negative iterations, non-positive scaling ratio, ...).
	ErrCodeInvalidParameters Code = "INVALID_PARAMETERS"

	// ErrCodeUnknownAlgorithm reports an algorithm name that is neither a
	// built-in nor a registered delegate.
	ErrCodeUnknownAlgorithm Code = "UNKNOWN_ALGORITHM"

	// ErrCodeNumericDegeneracy reports a numerical procedure that failed on
	// degenerate input, such as an eigen-decomposition that did not converge.
	ErrCodeNumericDegeneracy Code = "NUMERIC_DEGENERACY"

	// ErrCodeInvalidPath reports a rejected CLI input or output path.
	ErrCodeInvalidPath Code = "INVALID_PATH"
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
