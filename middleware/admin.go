package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route group on the explicit admin role carried in the
// token claims. Runs after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		c.Abort()
		return
	}
	c.Next()
}
