package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

// IdentityMiddleware resolves the request to a user. A valid Bearer token
// yields that identity; anything else falls back to the shared demo user
// rather than rejecting, because the dashboard is fully usable without an
// account.
func IdentityMiddleware(provider Provider) gin.HandlerFunc {
	demo := &internal.User{
		ID:       "demo-user",
		Username: internal.DemoUsername,
		Email:    "demo@fitos.com",
	}
	return func(c *gin.Context) {
		user := demo
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if verified, err := provider.Verify(token); err == nil {
				user = verified
			}
		}
		c.Set("user", user)
		c.Next()
	}
}

// UserFrom returns the identity set by IdentityMiddleware.
func UserFrom(c *gin.Context) *internal.User {
	return c.MustGet("user").(*internal.User)
}
