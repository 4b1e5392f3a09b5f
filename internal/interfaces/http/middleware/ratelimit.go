package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"harbormaster/internal/infrastructure/ratelimit"
	"harbormaster/internal/shared/utils"
)

// WriteRateLimiter throttles mutating endpoints per client IP using the
// redis sliding-window limiter. Reads are never limited.
type WriteRateLimiter struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.Config
}

// NewWriteRateLimiter creates a WriteRateLimiter.
func NewWriteRateLimiter(limiter ratelimit.RateLimiter, config ratelimit.Config) *WriteRateLimiter {
	return &WriteRateLimiter{
		limiter: limiter,
		config:  config,
	}
}

// Limit returns a Gin middleware that enforces the configured limits.
func (rl *WriteRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := rl.limiter.Allow(c.ClientIP(), rl.config)
		if err != nil {
			// Redis being down must not take the API with it
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", time.Minute.String())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
