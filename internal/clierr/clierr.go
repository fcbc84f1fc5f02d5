// Package clierr defines structured error types for CLI commands.
// Errors carry a machine-readable code, a human-readable message,
// and optional details for scripted consumers.
package clierr

import (
	"errors"
	"fmt"
	"strconv"
)

// Error code constants. Uppercase, underscore-separated, stable across minor versions.
const (
	ItemNotFound       = "ITEM_NOT_FOUND"
	AmbiguousID        = "AMBIGUOUS_ID"
	StoreNotFound      = "STORE_NOT_FOUND"
	StoreAlreadyExists = "STORE_ALREADY_EXISTS"
	InvalidInput       = "INVALID_INPUT"
	InvalidPriority    = "INVALID_PRIORITY"
	InvalidFilter      = "INVALID_FILTER"
	InvalidBackend     = "INVALID_BACKEND"
	InvalidConfig      = "INVALID_CONFIG"
	EmptyText          = "EMPTY_TEXT"
	ConfirmationReq    = "CONFIRMATION_REQUIRED"
	StorageError       = "STORAGE_ERROR"
	InternalError      = "INTERNAL_ERROR"
)

// Error represents a structured CLI error with a machine-readable code.
type Error struct {
	Code    string
	Message string
	Details map[string]any
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error whose message is err's message and whose cause is err.
func Wrap(code string, err error) *Error {
	return &Error{Code: code, Message: err.Error(), Err: err}
}

// WithDetails returns the error with the given details map attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// ExitCode returns 2 for internal and storage errors, 1 for all others.
func (e *Error) ExitCode() int {
	switch e.Code {
	case InternalError, StorageError:
		return 2 //nolint:mnd // exit code 2 for internal errors
	default:
		return 1
	}
}

// As extracts an *Error from err's chain. Plain errors come back as
// InternalError.
func As(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return Wrap(InternalError, err)
}

// SilentError signals an exit code without additional output.
type SilentError struct {
	Code int
}

// Error implements the error interface.
func (e *SilentError) Error() string { return "exit " + strconv.Itoa(e.Code) }
