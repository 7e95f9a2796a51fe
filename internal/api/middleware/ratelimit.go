package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Limiter decides whether one more call for key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit rejects requests over the limit with 429, keyed by client IP.
// A nil limiter disables the check.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		if !limiter.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
