package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stockwatch/internal/caching"
)

// RateLimitMiddleware enforces a fixed-window per-client request limit
// backed by redis. When redis is unreachable the limiter fails open so a
// cache outage never takes the read API down with it.
type RateLimitMiddleware struct {
	cacheSvc caching.CacheService
	limit    int
	window   time.Duration
}

func NewRateLimitMiddleware(cacheSvc caching.CacheService, limit int, window time.Duration) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cacheSvc: cacheSvc,
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := c.RealIP()

			limited, err := rl.cacheSvc.IsRateLimited(ctx, key, rl.limit, rl.window)
			if err != nil {
				log.Printf("Rate limit check failed for %s: %v", key, err)
				return next(c)
			}
			if limited {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded")
			}

			if err := rl.cacheSvc.IncrementRateLimit(ctx, key, rl.window); err != nil {
				log.Printf("Rate limit increment failed for %s: %v", key, err)
			}
			return next(c)
		}
	}
}
