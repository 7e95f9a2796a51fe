package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"hrm-api/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	sessionCtx          = "session" // Key to store the auth.Session in context
)

// JWTAuthMiddleware verifies the bearer token, rejects revoked tokens and
// stores the caller's auth.Session in the gin context.
func JWTAuthMiddleware(tokens *auth.TokenManager, revoker auth.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		session, err := tokens.Parse(strings.TrimSpace(tokenString))
		if err != nil {
			slog.DebugContext(c.Request.Context(), "token rejected", "error", err)
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), session.TokenID)
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "token revocation check failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set(sessionCtx, session)
		c.Next()
	}
}

// RequireAdmin must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := SessionFromContext(c)
		if err != nil || !session.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session stored by JWTAuthMiddleware.
func SessionFromContext(c *gin.Context) (*auth.Session, error) {
	v, exists := c.Get(sessionCtx)
	if !exists {
		return nil, errors.New("session not found in context")
	}
	session, ok := v.(*auth.Session)
	if !ok || session == nil {
		return nil, errors.New("session in context is of invalid type")
	}
	return session, nil
}

// SetSession stores session the way JWTAuthMiddleware does.
func SetSession(c *gin.Context, session *auth.Session) {
	c.Set(sessionCtx, session)
}
