package middleware

import (
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// SelfOnly returns a middleware that ensures the path parameter named by
// param matches the authenticated user's email. It must run after Auth.
func SelfOnly(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		if c.Param(param) != email {
			response.Forbidden(c, "you can only access your own resources")
			c.Abort()
			return
		}

		c.Next()
	}
}
