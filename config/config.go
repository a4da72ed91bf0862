// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment
	Port           string
	AllowedOrigins []string
	Version        string
}

// DatabaseConfig holds PostgreSQL connection details. An empty Host means the
// store is unconfigured and the service runs in demo mode.
type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConnections int
}

// URL returns a postgres:// connection URL suitable for pgxpool and
// golang-migrate.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// IsConfigured reports whether a database connection can be attempted.
func (c *DatabaseConfig) IsConfigured() bool {
	return c.Host != "" && c.Name != ""
}

// RedisConfig holds Redis connection details for the rate limiter. An empty
// Address disables rate limiting.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// LLMConfig holds Gemini API settings. An empty APIKey disables the AI path;
// the deterministic fallback generator serves every request instead.
type LLMConfig struct {
	APIKey          string
	Model           string
	TimeoutSeconds  int
	MaxOutputTokens int32
}

// RateLimitConfig bounds the LLM-backed endpoints per client IP.
type RateLimitConfig struct {
	RequestsPerMinute int
	WindowSeconds     int
}

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	LLM       LLMConfig
	RateLimit RateLimitConfig
}

// LoadConfig reads configuration from environment variables, applying
// defaults for everything optional.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENVIRONMENT", string(EnvDevelopment))
	v.SetDefault("PORT", "8080")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("VERSION", "dev")

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNECTIONS", 10)

	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	v.SetDefault("LLM_MAX_OUTPUT_TOKENS", 4000)

	v.SetDefault("RATE_LIMIT_REQUESTS_PER_MINUTE", 30)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	env := Environment(v.GetString("ENVIRONMENT"))
	if env != EnvDevelopment && env != EnvProduction {
		return nil, fmt.Errorf("invalid ENVIRONMENT: %q", env)
	}

	cfg := &Config{
		Server: ServerConfig{
			Environment:    env,
			Port:           v.GetString("PORT"),
			AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
			Version:        v.GetString("VERSION"),
		},
		Database: DatabaseConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetInt("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			Name:           v.GetString("DB_NAME"),
			SSLMode:        v.GetString("DB_SSL_MODE"),
			MaxConnections: v.GetInt("DB_MAX_CONNECTIONS"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("REDIS_ADDRESS"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		LLM: LLMConfig{
			APIKey:          v.GetString("GEMINI_API_KEY"),
			Model:           v.GetString("GEMINI_MODEL"),
			TimeoutSeconds:  v.GetInt("LLM_TIMEOUT_SECONDS"),
			MaxOutputTokens: v.GetInt32("LLM_MAX_OUTPUT_TOKENS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("RATE_LIMIT_REQUESTS_PER_MINUTE"),
			WindowSeconds:     v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	if cfg.Server.Environment == EnvProduction && cfg.Database.IsConfigured() && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required in production")
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
