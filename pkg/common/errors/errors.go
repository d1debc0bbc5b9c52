// Package errors defines the application error taxonomy and its
// mapping onto HTTP status codes. Wrapping and inspection go through
// cockroachdb/errors so call sites keep stack context.
package errors

import (
	"fmt"
	"net/http"

	crdb "github.com/cockroachdb/errors"
)

// Common sentinel errors
var (
	ErrInvalidInput       = crdb.New("invalid input")
	ErrNotFound           = crdb.New("not found")
	ErrConflict           = crdb.New("conflict")
	ErrUnparsable         = crdb.New("unparsable query")
	ErrConflictingFilters = crdb.New("conflicting filters")
	ErrInternal           = crdb.New("internal error")
)

// Re-exports so callers don't need a second errors import.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
)

// AppError represents an application-specific error with an HTTP status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// MapError maps a domain error to an AppError with an appropriate HTTP
// status code. Detail added via Wrap/Wrapf becomes the message so the
// boundary reports what actually failed.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	// Check for existing AppError
	var appErr *AppError
	if crdb.As(err, &appErr) {
		return appErr
	}

	switch {
	case crdb.Is(err, ErrInvalidInput):
		return NewAppError(http.StatusBadRequest, messageOf(err, "Invalid request"), err)
	case crdb.Is(err, ErrNotFound):
		return NewAppError(http.StatusNotFound, messageOf(err, "Resource not found"), err)
	case crdb.Is(err, ErrConflict):
		return NewAppError(http.StatusConflict, messageOf(err, "Resource conflict"), err)
	case crdb.Is(err, ErrUnparsable):
		return NewAppError(http.StatusBadRequest, messageOf(err, "Unable to parse query"), err)
	case crdb.Is(err, ErrConflictingFilters):
		return NewAppError(http.StatusUnprocessableEntity, messageOf(err, "Conflicting filters"), err)
	}

	// Default to internal server error
	return NewAppError(http.StatusInternalServerError, "Internal server error", err)
}

// messageOf returns the error text, or the fallback for a bare sentinel.
func messageOf(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
