package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RateLimiter caps requests per client IP within a rolling window. Buckets
// live in process memory; stale ones are pruned as new windows open.
func RateLimiter(limit int, window time.Duration, logger *zap.Logger) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	prune := func(now time.Time) {
		for key, b := range buckets {
			if now.Sub(b.start) > 2*window {
				delete(buckets, key)
			}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				prune(now)
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				logger.Warn("rate limit exceeded", zap.String("ip", key))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}
