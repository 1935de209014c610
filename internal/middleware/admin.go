package middleware

import (
	"forum-api/internal/authz"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminOnly returns a middleware that rejects non-admin callers.
// It must run after Auth so the caller's email is in the context.
func AdminOnly(authorizer authz.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetUserEmail(c)
		if email == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		admin, err := authorizer.IsAdmin(c.Request.Context(), email)
		if err != nil {
			response.InternalError(c)
			c.Abort()
			return
		}

		if !admin {
			response.Forbidden(c, "admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
