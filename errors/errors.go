// Package errors provides unified error handling for strata services.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection, so handlers can translate any application error
// into a consistent JSON response.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound, Details: details,
	}
}

// AlreadyExists creates a new AppError for a resource that already exists.
func AlreadyExists(resource, field string) *AppError {
	return &AppError{
		Code: ErrCodeAlreadyExists, Message: fmt.Sprintf("A %s with this %s already exists.", resource, field),
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"resource": resource, "field": field},
	}
}

// Validation creates a new AppError for invalid input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Unauthorized creates a new AppError for an unauthorized request.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Authentication is required."
	}
	return &AppError{
		Code: ErrCodeUnauthorized, Message: message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a new AppError for a forbidden request.
func Forbidden(message string) *AppError {
	if message == "" {
		message = "You do not have access to this resource."
	}
	return &AppError{
		Code: ErrCodeForbidden, Message: message,
		HTTPStatus: http.StatusForbidden,
	}
}

// Unavailable creates a new AppError for a temporarily unavailable service
// or component. Unlike the other constructors it is retryable.
func Unavailable(component string) *AppError {
	return &AppError{
		Code: ErrCodeServiceUnavailable, Message: fmt.Sprintf("The %s is temporarily unavailable.", component),
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"component": component},
	}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "Something went wrong. Please try again later.",
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}

// DependencyFailure creates a new AppError for broken construction-time wiring,
// such as a handler resolving a component that was never registered.
func DependencyFailure(component string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDependencyFailure, Message: fmt.Sprintf("Required component %s is unavailable.", component),
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
		Details: map[string]any{"component": component},
	}
}
