package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterInterface is the contract the rate-limit middleware depends on.
type RateLimiterInterface interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

// RateLimitService implements fixed-window rate limiting on Redis. It guards
// the LLM-backed endpoints so a single client cannot drain the API budget.
type RateLimitService struct {
	redis     *redis.Client
	keyPrefix string
}

// NewRateLimitService creates a rate limiter on the given Redis client.
func NewRateLimitService(redisClient *redis.Client) *RateLimitService {
	return &RateLimitService{
		redis:     redisClient,
		keyPrefix: "rate_limit:",
	}
}

// CheckLimit increments the counter for key and reports whether the caller is
// within limit for the window. When over the limit it also returns the time
// until the window resets.
func (s *RateLimitService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	rKey := s.keyPrefix + key

	pipe := s.redis.Pipeline()
	incr := pipe.Incr(ctx, rKey)
	pipe.Expire(ctx, rKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}

	if incr.Val() > int64(limit) {
		ttl, err := s.redis.TTL(ctx, rKey).Result()
		if err != nil {
			return false, 0, err
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
