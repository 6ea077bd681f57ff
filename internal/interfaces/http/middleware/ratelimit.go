package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/infrastructure/ratelimit"
	"rolehub/internal/shared/config"
	"rolehub/internal/shared/logger"
	"rolehub/internal/shared/utils"
)

// RateLimiter enforces a per-IP request budget. When the backing store is
// unavailable requests pass through, so a Redis outage never takes the API
// down with it.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	cfg     config.RateLimitConfig
	logger  logger.Interface
}

// NewRateLimiter creates the middleware around a rate limiter backend.
func NewRateLimiter(limiter ratelimit.RateLimiter, cfg config.RateLimitConfig, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		cfg:     cfg,
		logger:  log,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.cfg.Enabled || rl.limiter == nil {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow("ip:"+c.ClientIP(), ratelimit.Config{
			RequestsPerMinute: rl.cfg.RequestsPerMinute,
		})
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
