package middleware

import (
	"net/http"
	"strings"

	"github.com/designforge/design-forge-backend/internal/apperr"
	"github.com/designforge/design-forge-backend/internal/auth"
	"github.com/designforge/design-forge-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

// RequireAuth validates bearer tokens and attaches the caller identity to
// the request context for downstream handlers.
func RequireAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing authorization header",
			})
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			kind := apperr.KindOf(err)
			if kind == apperr.ConfigurationError {
				logging.NewLogger(c.Request.Context()).LogError("auth", err)
			}
			c.AbortWithStatusJSON(apperr.HTTPStatus(kind), gin.H{
				"success": false,
				"error":   apperr.PublicMessage(err),
			})
			return
		}

		c.Set(auth.CtxUserID, identity.UserID)
		c.Set(auth.CtxIdentity, identity)

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
