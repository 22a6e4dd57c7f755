package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsharma1/Bizdash/auth"
)

const usernameKey = "auth_username"

// AuthMiddleware requires a valid Bearer session token on every request it
// guards. The verified username is stored on the context for handlers.
func AuthMiddleware(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing session token"})
			return
		}

		username, err := gate.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired session token"})
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// Username returns the operator name set by AuthMiddleware.
func Username(c *gin.Context) string {
	return c.GetString(usernameKey)
}
