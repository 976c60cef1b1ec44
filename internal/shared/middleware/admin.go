package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin checks that the authenticated caller carries the admin role.
// Must run after Auth.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			abortForbidden(c)
			return
		}

		role, ok := roleInterface.(string)
		if !ok || role != "admin" {
			abortForbidden(c)
			return
		}

		c.Next()
	}
}

func abortForbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"success": false,
		"error":   "Access denied: admin role required",
	})
	c.Abort()
}
