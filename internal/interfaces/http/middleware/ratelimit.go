package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio/internal/infrastructure/ratelimit"
	"devfolio/internal/shared/logger"
	"devfolio/internal/shared/utils"
)

// RateLimit returns a middleware that bounds access requests per client IP.
// The limiter state lives in Redis so the bound holds across instances.
// When the limiter itself fails the request is allowed through; dropping
// all traffic on a Redis outage would be worse than dropping the limit.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP(), config)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
