package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/TripVibes/trip-vibes-backend/errors"
	"github.com/TripVibes/trip-vibes-backend/logger"
)

// ErrorHandler renders errors pushed onto the Gin context as the flat
// {"error": "..."} body the frontend expects, logging the details that stay
// server-side.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			status := appError.GetHTTPStatus()

			logFn := log.Warnw
			if status >= http.StatusInternalServerError {
				logFn = log.Errorw
			}
			logFn("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", status,
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"error_detail", appError.Detail,
				"request_id", c.GetString(RequestIDKey),
			)

			c.JSON(status, gin.H{"error": appError.Message})
			return
		}

		log.Errorw("Unhandled error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
			"request_id", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
