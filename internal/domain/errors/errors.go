package errors

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping code and status
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors derived from the same predefined error by code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// Predefined error types
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrIcebreakerNotFound = NewBaseError(
		http.StatusNotFound,
		"ICEBREAKER_NOT_FOUND",
		"Selected prompt not found",
		"",
	)

	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"Entry not found",
		"",
	)

	ErrDuplicateID = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ID",
		"A record with this id already exists",
		"",
	)

	ErrTextTransformFailed = NewBaseError(
		http.StatusBadGateway,
		"TEXT_TRANSFORM_FAILED",
		"An unexpected error occurred while generating topic suggestions.",
		"",
	)

	ErrTextTransformEmpty = NewBaseError(
		http.StatusUnprocessableEntity,
		"TEXT_TRANSFORM_EMPTY",
		"AI could not generate suggestions for this input. Please try a different topic.",
		"",
	)

	ErrTextTransformUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"TEXT_TRANSFORM_UNAVAILABLE",
		"Topic suggestions are not available right now.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ValidationErrorCode is the business code of every validation failure
const ValidationErrorCode = "VALIDATION_FAILED"

// ValidationError reports malformed input as a list of human-readable issues.
// Nothing is mutated when it is returned.
type ValidationError struct {
	issues []string
}

// NewValidationError creates a validation error from one or more issues
func NewValidationError(issues ...string) *ValidationError {
	return &ValidationError{issues: issues}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.issues) == 0 {
		return e.Message()
	}

	return e.Message() + ": " + strings.Join(e.issues, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ValidationErrorCode
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Validation failed. Please check your input."
}

// Details returns the issues joined into one line
func (e *ValidationError) Details() string {
	return strings.Join(e.issues, "; ")
}

// Issues returns a copy of the individual validation messages
func (e *ValidationError) Issues() []string {
	out := make([]string, len(e.issues))
	copy(out, e.issues)

	return out
}
