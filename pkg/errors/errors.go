// Package errors provides structured error types for the pedigree renderer.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages that name the offending record
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*, DUPLICATE_*, MISSING_*, UNKNOWN_*: record validation failures
//   - GENERATION_CONFLICT, RECORD_TOO_LARGE: structural validation failures
//   - RENDER_*, CONVERT_*, WRITE_*: output production failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateID, "duplicate individual id %q", id)
//	if errors.Is(err, errors.ErrCodeDuplicateID) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConvertFailed, origErr, "convert %s", format)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Record validation errors. These indicate a problem with the input
	// document itself and abort processing before any layout happens.
	ErrCodeInvalidRecord      Code = "INVALID_RECORD"
	ErrCodeDuplicateID        Code = "DUPLICATE_ID"
	ErrCodeUnknownReference   Code = "UNKNOWN_REFERENCE"
	ErrCodeMissingField       Code = "MISSING_FIELD"
	ErrCodeGenerationConflict Code = "GENERATION_CONFLICT"
	ErrCodeRecordTooLarge     Code = "RECORD_TOO_LARGE"

	// Tolerated-input warnings. These never abort processing on their own;
	// they are reported through [Warning] values instead.
	ErrCodeUnknownStatus       Code = "UNKNOWN_STATUS"
	ErrCodeUnknownRelationship Code = "UNKNOWN_RELATIONSHIP"

	// CLI input errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Output production errors
	ErrCodeRenderFailed  Code = "RENDER_FAILED"
	ErrCodeConvertFailed Code = "CONVERT_FAILED"
	ErrCodeWriteFailed   Code = "WRITE_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code, an optional subject naming the
// offending individual or relationship, and an optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Subject string // ID of the individual or relationship at fault (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("%s [%s]", e.Message, e.Subject)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
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

// WithSubject attaches the ID of the record element at fault and returns the
// error for chaining.
func (e *Error) WithSubject(id string) *Error {
	e.Subject = id
	return e
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

// Subject extracts the subject ID from an error, if available.
func Subject(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Subject
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Subject != "" {
			return fmt.Sprintf("%s [%s]", e.Message, e.Subject)
		}
		return e.Message
	}
	return err.Error()
}

// validationCodes is the set of codes that indicate a rejected input record
// rather than a failure while producing output.
var validationCodes = map[Code]bool{
	ErrCodeInvalidRecord:      true,
	ErrCodeDuplicateID:        true,
	ErrCodeUnknownReference:   true,
	ErrCodeMissingField:       true,
	ErrCodeGenerationConflict: true,
	ErrCodeRecordTooLarge:     true,
	ErrCodeInvalidFormat:      true,
	ErrCodeInvalidPath:        true,
}

// IsValidation reports whether err is a record or input validation failure.
// Callers use this to distinguish a rejected input (the caller's fault) from
// an internal rendering failure.
func IsValidation(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return validationCodes[e.Code]
	}
	return false
}

// renderCodes is the set of codes raised while producing output from an
// already-accepted record.
var renderCodes = map[Code]bool{
	ErrCodeRenderFailed:  true,
	ErrCodeConvertFailed: true,
	ErrCodeWriteFailed:   true,
}

// IsRender reports whether err is an output production failure. The CLI maps
// these to a distinct exit code so scripts can tell a rejected record from a
// broken toolchain.
func IsRender(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return renderCodes[e.Code]
	}
	return false
}
