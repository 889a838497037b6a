package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const userContextKey = "user"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves the bearer token into the current user and stores it on the
// request context for downstream handlers.
func Auth(auth Authenticator) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole gates a route to the given roles. Admins always pass.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthorized"},
			)
			return
		}

		if user.Role == domain.RoleAdmin {
			c.Next()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			ginext.H{"error": "insufficient permissions"},
		)
	}
}

// CurrentUser returns the user resolved by Auth, if any.
func CurrentUser(c *ginext.Context) (*domain.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
