package middleware

import (
	"net/http"
	"strings"

	"journalhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for bearer-token authentication of API
// requests. It resolves the token to a user via the auth service and stores
// the identity in the request context for handlers to use.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "invalid authorization header format")
			return
		}

		user, err := authService.ResolveIdentity(parts[1])
		if err != nil {
			unauthorized(c, service.ErrInvalidToken.Error())
			return
		}

		// Set user info in context for handlers to use
		c.Set("user", user)
		c.Set("email", user.Email)

		c.Next()
	}
}

// unauthorized rejects the request with the bearer challenge header.
func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": detail})
	c.Abort()
}
