package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/TripVibes/trip-vibes-backend/config"
	"github.com/TripVibes/trip-vibes-backend/db"
	"github.com/TripVibes/trip-vibes-backend/handlers"
	"github.com/TripVibes/trip-vibes-backend/internal/store"
	"github.com/TripVibes/trip-vibes-backend/internal/store/postgres"
	"github.com/TripVibes/trip-vibes-backend/logger"
	"github.com/TripVibes/trip-vibes-backend/models"
	"github.com/TripVibes/trip-vibes-backend/pkg/gemini"
	"github.com/TripVibes/trip-vibes-backend/router"
	"github.com/TripVibes/trip-vibes-backend/services"
)

func main() {
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Database and the LLM are both optional: without a store the service
	// mints demo ids, and without an API key every itinerary comes from the
	// deterministic fallback generator.
	tripStore := setupStore(ctx, cfg)
	llmClient := setupLLM(ctx, cfg)

	llmTimeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
	itineraryService := services.NewItineraryService(llmClient, llmTimeout)
	discoveryService := services.NewDiscoveryService(llmClient, llmTimeout)

	tripModel := models.NewTripModel(tripStore, itineraryService)

	deps := router.Dependencies{
		Config:           cfg,
		TripHandler:      handlers.NewTripHandler(tripModel),
		DiscoveryHandler: handlers.NewDiscoveryHandler(discoveryService),
		HealthHandler:    handlers.NewHealthHandler(cfg.Server.Version),
	}

	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		deps.RateLimiter = services.NewRateLimitService(redisClient)
	} else {
		log.Warnw("Redis not configured, rate limiting disabled")
	}

	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupStore connects to Postgres and applies migrations. Any failure leaves
// the service in demo mode rather than refusing to start.
func setupStore(ctx context.Context, cfg *config.Config) store.TripStore {
	log := logger.GetLogger()

	if !cfg.Database.IsConfigured() {
		log.Warnw("Database not configured, running in demo mode")
		return nil
	}

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Errorw("Migrations failed, running in demo mode", "error", err)
		return nil
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL())
	if err != nil {
		log.Errorw("Invalid database config, running in demo mode", "error", err)
		return nil
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Errorw("Database connection failed, running in demo mode", "error", err)
		return nil
	}

	return postgres.NewTripStore(pool)
}

// setupLLM creates the Gemini client when an API key is configured.
func setupLLM(ctx context.Context, cfg *config.Config) gemini.ClientInterface {
	log := logger.GetLogger()

	if cfg.LLM.APIKey == "" {
		log.Warnw("Gemini API key not configured, using fallback generation only")
		return nil
	}

	client, err := gemini.NewClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.MaxOutputTokens)
	if err != nil {
		log.Errorw("Gemini client init failed, using fallback generation only", "error", err)
		return nil
	}

	log.Infow("Gemini client initialized", "model", cfg.LLM.Model)
	return client
}
