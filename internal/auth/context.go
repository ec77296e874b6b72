package auth

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// Role is the operator role selected at the till. It is a presentation flag,
// not an authenticated identity.
type Role string

const (
	RoleOwner       Role = "Owner"
	RoleSalesperson Role = "Salesperson"

	RoleHeader = "X-Role"
)

type roleKey struct{}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleSalesperson:
		return Role(s), true
	}
	return "", false
}

func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// GetRole returns the role stored on ctx, or RoleSalesperson when none was set.
func GetRole(ctx context.Context) Role {
	if role, ok := ctx.Value(roleKey{}).(Role); ok {
		return role
	}
	return RoleSalesperson
}

// RoleMiddleware reads the role header into the request context. Requests
// without the header run as Salesperson.
func RoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := RoleSalesperson
		if raw := c.GetHeader(RoleHeader); raw != "" {
			parsed, ok := ParseRole(raw)
			if !ok {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown role " + raw})
				return
			}
			role = parsed
		}
		c.Request = c.Request.WithContext(WithRole(c.Request.Context(), role))
		c.Next()
	}
}

func RequireRole(allowed ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(allowed, GetRole(c.Request.Context())) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not permitted"})
			return
		}
		c.Next()
	}
}
