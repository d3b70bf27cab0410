package middleware

import (
	"net/http"
	"strings"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts the session token either as a Bearer
// header or as the http-only session cookie.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
				c.Abort()
				return
			}
			token = parts[1]
		} else if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
			token = cookie
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			c.Abort()
			return
		}

		userID, email, role, err := auth.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Attach user info to request context
		c.Set("userID", userID)
		c.Set("userEmail", email)
		c.Set("userRole", role)
		c.Next()
	}
}
