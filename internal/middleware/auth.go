package middleware

import (
	"net/http"
	"strings"

	"clean-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyIsAdmin  = "is_admin"
)

func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtSecret) {
			return
		}
		c.Next()
	}
}

// AdminMiddleware authenticates like AuthMiddleware and then requires the
// admin flag: 401 without a valid token, 403 for a non-admin one.
func AdminMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, jwtSecret) {
			return
		}

		if !c.GetBool(KeyIsAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}

// authenticate stores the token claims on c, or aborts with 401.
func authenticate(c *gin.Context, jwtSecret string) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
		return false
	}

	claims, err := auth.ValidateToken(tokenString, jwtSecret)
	if err != nil || claims.TokenType != auth.AccessToken {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return false
	}

	c.Set(KeyUserID, claims.UserID)
	c.Set(KeyUsername, claims.Username)
	c.Set(KeyIsAdmin, claims.IsAdmin)
	return true
}
