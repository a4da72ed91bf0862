package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("Budget must be a positive number", "budget=-5")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, http.StatusBadRequest, err.GetHTTPStatus())
	assert.Contains(t, err.Error(), "Budget must be a positive number")
}

func TestNotFound(t *testing.T) {
	err := NotFound("Trip", "abc-123")
	assert.Equal(t, "NOT_FOUND", err.Message)
	assert.Equal(t, http.StatusNotFound, err.GetHTTPStatus())
	assert.Contains(t, err.Detail, "abc-123")
}

func TestWrap(t *testing.T) {
	raw := errors.New("connection refused")
	err := Wrap(raw, DatabaseError, "SERVER_ERROR")
	assert.Equal(t, http.StatusInternalServerError, err.GetHTTPStatus())
	assert.Equal(t, raw, errors.Unwrap(err))

	assert.Nil(t, Wrap(nil, DatabaseError, "ignored"))
}

func TestGetHTTPStatusDefault(t *testing.T) {
	err := &AppError{Type: "SOMETHING_ELSE", Message: "boom"}
	assert.Equal(t, http.StatusInternalServerError, err.GetHTTPStatus())
}
