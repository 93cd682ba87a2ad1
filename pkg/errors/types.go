package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure for transport mapping
type ErrorCode string

const (
	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeConflict ErrorCode = "CONFLICT"

	// Validation errors
	ErrCodeValidation ErrorCode = "VALIDATION"

	// Authentication/Authorization errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"

	// Database errors
	ErrCodeDatabaseQuery ErrorCode = "DATABASE_QUERY"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError is the structured error every service operation returns on
// failure. Domain-rule violations carry precise messages; storage faults
// are wrapped with a generic message so backend detail never leaks out.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the HTTP status code for the error's code
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidation:
		return http.StatusBadRequest
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates a new AppError with a formatted message
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// Common constructors

// NotFound creates a not found error naming the resource
func NotFound(resource string, id any) *AppError {
	return Newf(ErrCodeNotFound, "%s with id %v not found", resource, id)
}

// Forbidden creates an ownership-violation error
func Forbidden(message string) *AppError {
	return New(ErrCodeForbidden, message)
}

// Conflict creates a conflict error
func Conflict(message string) *AppError {
	return New(ErrCodeConflict, message)
}

// Unauthorized creates an authentication error
func Unauthorized(message string) *AppError {
	return New(ErrCodeUnauthorized, message)
}

// Database wraps a storage fault with a generic message
func Database(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodeDatabaseQuery, fmt.Sprintf("database %s failed", operation))
}

// Is reports whether err carries the given error code
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HTTPStatus extracts the HTTP status code from an error
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message returns the user-facing message for an error. Unclassified
// errors get a generic message rather than their raw text.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Code == ErrCodeDatabaseQuery || appErr.Code == ErrCodeInternal {
			return "Internal server error occurred."
		}
		return appErr.Message
	}
	return "Internal server error occurred."
}
