package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/TripVibes/trip-vibes-backend/errors"
)

// bindJSONOrError binds the request body into obj, pushing a validation error
// onto the context when the body is malformed. Returns false on failure.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return false
	}
	return true
}
