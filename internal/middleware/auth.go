package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobtrackr/internal/auth"
)

const userIDKey = "userID"

// RequireAuth extracts the bearer token from the Authorization header,
// verifies it, and stores the resolved user id in the gin context. Every
// route except register/login runs behind it.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token."})
			return
		}

		userID, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed."})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity resolved by RequireAuth. Empty only if the
// middleware did not run, which would be a routing bug.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
