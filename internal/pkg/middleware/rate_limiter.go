package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridermap/internal/pkg/constants"
	"github.com/piresc/ridermap/internal/pkg/database"
	"github.com/piresc/ridermap/internal/pkg/logger"
	"github.com/piresc/ridermap/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *database.RedisClient
	Limit       int           // Maximum number of requests per period, 0 disables
	Period      time.Duration // Window length, starts at the first request
}

// RateLimiterMiddleware limits requests per client IP and route using a Redis
// counter. Redis failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if config.Limit <= 0 || config.RedisClient == nil {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyUploadQuota, c.Path(), c.RealIP())

			count, ttl, err := config.RedisClient.IncrWindow(ctx, key, config.Period)
			if err != nil {
				logger.FromContext(ctx).Warn("Rate limiter unavailable",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				return utils.TooManyRequestsResponse(c, ttl)
			}

			header.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *database.RedisClient) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Limit:       limit,
		Period:      period,
	})
}
