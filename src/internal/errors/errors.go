// Package errors provides domain-specific error types for the produtos service.
//
// Every failure that crosses a package boundary carries an ErrorCode, so the
// HTTP layer can map it to a status without inspecting messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a product id that is not in the collection.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeCorruptData indicates the data file exists but cannot be parsed.
	ErrCodeCorruptData ErrorCode = "CORRUPT_DATA"

	// ErrCodeIO indicates the data file could not be read or written.
	ErrCodeIO ErrorCode = "IO_ERROR"

	// ErrCodeBadRequest indicates request input that failed validation.
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	// ErrCodeConflict indicates an update that would break id uniqueness.
	ErrCodeConflict ErrorCode = "CONFLICT"

	// ErrCodeConfig indicates a configuration-related error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or
// ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	var de *Error
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &Error{Code: code})
}

// NewNotFoundError creates a new not-found error.
func NewNotFoundError(message string) *Error {
	return New(ErrCodeNotFound, message)
}

// NewCorruptDataError creates a new error for an unparseable data file.
func NewCorruptDataError(message string, cause error) *Error {
	return Wrap(ErrCodeCorruptData, message, cause)
}

// NewIOError creates a new I/O error.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}

// NewBadRequestError creates a new request validation error.
func NewBadRequestError(message string, cause error) *Error {
	return Wrap(ErrCodeBadRequest, message, cause)
}

// NewConflictError creates a new conflict error.
func NewConflictError(message string) *Error {
	return New(ErrCodeConflict, message)
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
