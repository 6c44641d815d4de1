package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles is a role-based access control middleware. Only requests
// whose role is listed in allowedRoles pass through.
// Example:
//
//	r.POST("/admin/rooms", RequireRoles("ADMIN", "MANAGER"), handler)
//
// The session middleware is expected to have set:
//
//	c.Set("userRole", "<role>")
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("userRole")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: no role on context",
			})
			return
		}

		normalizedRole := strings.ToLower(strings.TrimSpace(role))

		if _, ok := allowed[normalizedRole]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: role not allowed",
			})
			return
		}

		c.Next()
	}
}
