package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/domain"
	"github.com/WesleyJeean/Animeflix/internal/service"
)

const sessionCookieName = "session_token"

// extractToken pulls the session token from the request. The cookie wins
// over the Authorization header when both are present.
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// SessionMiddleware resolves the opaque session token and adds the
// authenticated user to the request context
func SessionMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := authService.ResolveSession(c.Request.Context(), extractToken(c))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)

		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// SessionMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}
