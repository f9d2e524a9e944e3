package middleware

import (
	"net/http"
	"sync"
	"time"

	"shopora/internal/utils"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Checkout (Strict)
	LimitStrict = rate.Limit(2)
	BurstStrict = 5

	// General (Default)
	LimitGeneral = rate.Limit(10)
	BurstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// init starts the background cleanup routine.
func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes old entries from the visitors map to prevent
// memory leaks.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit enforces the given tier per identity. Authenticated users get a
// per-user bucket, anonymous requests fall back to the client IP. The same
// identity has separate quotas for separate tiers.
func RateLimit(limit rate.Limit, burst int, tier string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var identity string
			if userID, ok := utils.GetUserIDFromContext(c.Request().Context()); ok {
				identity = "user:" + userID
			} else {
				identity = "ip:" + c.RealIP()
			}

			key := identity + ":" + tier

			if !getVisitor(key, limit, burst).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
			}

			return next(c)
		}
	}
}
