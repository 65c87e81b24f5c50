package middleware

import (
	"net/http"
	"strings"

	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// StaffAuthMiddleware validates the staff JWT and puts the staff ID, store
// scope and role on the context for handlers downstream.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set("staffID", sub)
		}
		if store, ok := claims["store"].(string); ok {
			c.Set("storeID", store)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}

		c.Next()
	}
}
