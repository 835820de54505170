package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxIdentity = "identity"
)

// UserID extracts the verified subject ID from the Gin context.
// This is set by middleware.RequireAuth.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// IdentityFrom returns the full validated identity, if present.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}
