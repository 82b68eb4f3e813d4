package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"brewspot/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer JWT and sets the caller identity in the
// request context. This is the authentication-context interface the
// engagement core consumes; issuing tokens is the auth service's job.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization token"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Authorization token format"})
			c.Abort()
			return
		}

		claims, err := utils.ParseJWTToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": fmt.Sprintf("Token validation error: %v", err)})
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("isModerator", claims.IsModerator)
		c.Next()
	}
}

// ModeratorOnly rejects callers whose token does not carry the moderator flag
func ModeratorOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isModerator, exists := c.Get("isModerator")
		if !exists || isModerator != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "Moderator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
