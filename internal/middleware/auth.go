package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/endfield/backend/internal/services"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Auth resolves the caller from the Authorization header and injects the
// identity into the request context. Routes behind it can rely on
// CurrentIdentity returning a non-nil value.
func Auth(identityService *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		identity, err := identityService.Resolve(token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccessDenied):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Profile not found (Access Denied)"})
			case errors.Is(err, services.ErrUnauthorized):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			}
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// AdminOnly gates a route group to Profile identities with the admin role.
// Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Admin privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by Auth, or nil outside of it
func CurrentIdentity(c *gin.Context) *services.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*services.Identity)
	return identity
}
