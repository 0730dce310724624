// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
	"github.com/finance-tracker/telegram-backend/internal/integration/entrypoint/dto"
)

const (
	// defaultRequestLimit is the number of requests allowed per client per
	// window. The web app fires a handful of API calls per user interaction,
	// so the limit is generous compared to a login endpoint.
	defaultRequestLimit = 120
	defaultWindow       = 1 * time.Minute
)

// clientWindow is the fixed counting window for a single client IP.
type clientWindow struct {
	count     int
	expiresAt time.Time
}

// RateLimiter enforces a fixed-window request limit per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter with default settings.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultRequestLimit, defaultWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with a custom limit and
// window duration.
func NewRateLimiterWithConfig(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  window,
	}
}

// Middleware returns a Gin handler that rejects clients over the limit with
// 429 and a Retry-After hint. Disabled when ENV=test.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.take(clientIP)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// take consumes one request slot for the key. When the limit is exhausted it
// returns false along with the time left until the window resets. Expired
// windows of other clients are swept opportunistically to bound memory.
func (rl *RateLimiter) take(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	w, ok := rl.clients[key]
	if !ok || now.After(w.expiresAt) {
		rl.sweepLocked(now)
		rl.clients[key] = &clientWindow{count: 1, expiresAt: now.Add(rl.window)}
		return true, 0
	}

	if w.count >= rl.limit {
		return false, time.Until(w.expiresAt)
	}

	w.count++
	return true, 0
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for key, w := range rl.clients {
		if now.After(w.expiresAt) {
			delete(rl.clients, key)
		}
	}
}
