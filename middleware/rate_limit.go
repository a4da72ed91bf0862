package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TripVibes/trip-vibes-backend/logger"
	"github.com/TripVibes/trip-vibes-backend/services"
)

// RateLimiter bounds requests per client IP using the Redis-backed limiter.
// It guards the LLM-brokered endpoints; a Redis outage fails open so rate
// limiting never takes the API down with it.
func RateLimiter(limiter services.RateLimiterInterface, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.FullPath(), c.ClientIP())

		allowed, retryAfter, err := limiter.CheckLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			logger.GetLogger().Warnw("Rate limit check failed, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
