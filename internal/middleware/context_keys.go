package middleware

import (
	"github.com/budgie-app/budgie/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the authenticated identity in
// the request context.
const identityKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated identity from the
// Gin context. The boolean reports whether an identity was established.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	identity, ok := c.Request.Context().Value(identityKey).(domain.Identity)
	if !ok || identity.IsZero() {
		return domain.Identity{}, false
	}
	return identity, true
}
