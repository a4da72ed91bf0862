package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TripVibes/trip-vibes-backend/config"
	"github.com/TripVibes/trip-vibes-backend/handlers"
	"github.com/TripVibes/trip-vibes-backend/middleware"
	"github.com/TripVibes/trip-vibes-backend/services"
)

// Dependencies holds everything needed to wire the routes.
type Dependencies struct {
	Config           *config.Config
	TripHandler      *handlers.TripHandler
	DiscoveryHandler *handlers.DiscoveryHandler
	HealthHandler    *handlers.HealthHandler
	// RateLimiter is optional; nil disables rate limiting (no Redis).
	RateLimiter services.RateLimiterInterface
}

// SetupRouter configures the Gin engine with all middleware and routes.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", deps.HealthHandler.HealthCheck)

		// LLM-brokered endpoints carry the rate limit.
		llmRoutes := api.Group("")
		if deps.RateLimiter != nil {
			llmRoutes.Use(middleware.RateLimiter(
				deps.RateLimiter,
				deps.Config.RateLimit.RequestsPerMinute,
				time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
			))
		}
		{
			llmRoutes.POST("/generate-itinerary", deps.TripHandler.GenerateItineraryHandler)
			llmRoutes.POST("/recommendations", deps.DiscoveryHandler.RecommendationsHandler)
			llmRoutes.POST("/enrich-activity", deps.DiscoveryHandler.EnrichActivityHandler)
		}

		api.GET("/trip/:id", deps.TripHandler.GetTripHandler)
		api.POST("/trip/:id/vote", deps.TripHandler.VoteHandler)
	}

	return r
}
