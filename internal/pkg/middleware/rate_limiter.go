package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/superblog/auth/internal/pkg/database"
	"github.com/superblog/auth/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a middleware for rate limiting using Redis.
// Requests are counted per route and client IP within the period.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)

			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key)
			if err != nil {
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period); err != nil {
					return utils.InternalServerErrorResponse(c, "Rate limiter error")
				}
			}

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key)
				if err != nil && err != redis.Nil {
					return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
				}

				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *database.RedisClient) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
	})
}
