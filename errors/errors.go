package errors

import (
	"fmt"
	"net/http"

	"github.com/TripVibes/trip-vibes-backend/logger"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	NotFoundError   ErrorType = "NOT_FOUND"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error. Message is the string
// rendered to the client in the response body; Detail and Raw stay in logs.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code for the error, defaulting to 500.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// New creates a new AppError with the status implied by its type.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap attaches AppError context to a raw error.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a client-caused validation failure. The message is
// what the client sees.
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound reports a missing entity. The client-facing message is the bare
// "NOT_FOUND" code expected by the frontend.
func NotFound(entity string, id interface{}) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    "NOT_FOUND",
		Detail:     fmt.Sprintf("%s not found (ID: %v)", entity, id),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewDatabaseError logs the raw store error and returns a sanitized 500.
func NewDatabaseError(err error) *AppError {
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "SERVER_ERROR",
		Detail:     "A database error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// InternalServerError reports an unexpected server-side failure.
func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError, ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
