// Package errors provides structured error types for the movergraph tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core packages and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (structure, index, file format, config)
//   - *_NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// A mover that cannot be built because the bonded neighborhood of its atom
// does not match the expected pattern reports [ErrCodeInvalidStructure]. The
// caller decides whether to skip that mover or abort the run.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidStructure, "atom %d: expected 1 neighbor, found %d", id, n)
//	if errors.Is(err, errors.ErrCodeInvalidStructure) {
//	    // Skip this mover
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
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
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidStructure Code = "INVALID_STRUCTURE"
	ErrCodeInvalidIndex     Code = "INVALID_INDEX"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// AtomError carries the identity of the atom whose bonded neighborhood failed
// a structural precondition, along with the expectation that failed.
type AtomError struct {
	ID       int    // Atom identity in the input structure
	Element  string // Element symbol
	Name     string // Atom name, may be empty
	Expected string // The precondition that was not met
}

// Error implements the error interface.
func (e *AtomError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("atom %d (%s %s): %s", e.ID, e.Element, e.Name, e.Expected)
	}
	return fmt.Sprintf("atom %d (%s): %s", e.ID, e.Element, e.Expected)
}

// Code returns the error code for this error type.
func (e *AtomError) Code() Code {
	return ErrCodeInvalidStructure
}
