// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/navhub/navhub_backend/models"
)

// RateLimiter keeps one token bucket per client IP, with a stricter
// bucket on the login endpoint to slow down credential guessing.
type RateLimiter struct {
	mu       sync.RWMutex
	ips      map[string]*rate.Limiter
	lastSeen map[string]time.Time

	defaultLimit rate.Limit
	defaultBurst int
	loginLimit   rate.Limit
	loginBurst   int
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:          make(map[string]*rate.Limiter),
		lastSeen:     make(map[string]time.Time),
		defaultLimit: rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst: 20,
		loginLimit:   rate.Every(2 * time.Second), // 1 attempt every 2 seconds
		loginBurst:   5,
	}

	go limiter.cleanupStale()

	return limiter
}

func (rl *RateLimiter) limiterFor(key string, limit rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.ips[key]
	if !ok {
		limiter = rate.NewLimiter(limit, burst)
		rl.ips[key] = limiter
	}
	rl.lastSeen[key] = time.Now()
	return limiter
}

// cleanupStale drops limiters for IPs that have been quiet for an
// hour so the map does not grow without bound.
func (rl *RateLimiter) cleanupStale() {
	for {
		time.Sleep(10 * time.Minute)
		cutoff := time.Now().Add(-1 * time.Hour)

		rl.mu.Lock()
		for key, seen := range rl.lastSeen {
			if seen.Before(cutoff) {
				delete(rl.ips, key)
				delete(rl.lastSeen, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit returns the echo middleware enforcing per-IP limits.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			limit, burst := rl.defaultLimit, rl.defaultBurst
			key := ip
			if c.Path() == "/api/auth/login" {
				limit, burst = rl.loginLimit, rl.loginBurst
				key = ip + ":login"
			}

			if !rl.limiterFor(key, limit, burst).Allow() {
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Status:  http.StatusTooManyRequests,
					Message: "Too many requests, please slow down",
				})
			}
			return next(c)
		}
	}
}
