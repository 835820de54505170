package ratelimit

import (
	"fmt"
	"net/http"

	"github.com/designforge/design-forge-backend/internal/auth"
	"github.com/designforge/design-forge-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

// Middleware bounds request volume per caller. The verified user ID is the
// preferred key; unauthenticated paths fall back to the client IP.
func Middleware(limiter *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := auth.UserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// A broken counter store should not take the API down.
			logging.NewLogger(c.Request.Context()).LogError("rate_limit", err)
			c.Next()
			return
		}

		if !decision.Allowed {
			retryAfter := int(decision.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate limit exceeded, try again later",
			})
			return
		}

		c.Next()
	}
}
