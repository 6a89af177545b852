package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies application errors so the HTTP layer can map
// them to status codes without inspecting messages.
type ErrorType string

const (
	TypeValidation ErrorType = "validation"
	TypeNotFound   ErrorType = "not_found"
	TypeExternal   ErrorType = "external_api"
	TypeTimeout    ErrorType = "timeout"
	TypeDatabase   ErrorType = "database"
	TypeInternal   ErrorType = "internal"
)

// AppError carries a type alongside the message and the wrapped cause.
type AppError struct {
	Type     ErrorType
	Message  string
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// New creates a new AppError.
func New(errorType ErrorType, message string) *AppError {
	return &AppError{Type: errorType, Message: message}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, errorType ErrorType, message string) *AppError {
	return &AppError{Type: errorType, Message: message, Internal: err}
}

func NewValidationError(message string) *AppError {
	return New(TypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(TypeNotFound, message)
}

func NewExternalAPIError(err error, api string) *AppError {
	return Wrap(err, TypeExternal, fmt.Sprintf("%s API error", api))
}

func NewTimeoutError(operation string) *AppError {
	return New(TypeTimeout, fmt.Sprintf("%s timed out", operation))
}

func NewDatabaseError(err error) *AppError {
	return Wrap(err, TypeDatabase, "database operation failed")
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// HTTPStatus maps an error to the status code the REST surface should
// respond with. Unknown errors are treated as internal.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeExternal:
		return http.StatusBadGateway
	case TypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
