// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"forum-api/pkg/auth"
	"forum-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserEmailKey = "userEmail"
	UserNameKey  = "userName"
)

// Auth returns a middleware that validates JWT tokens.
func Auth(validator auth.TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Store identity claims in context for handlers to use
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserNameKey, claims.Name)

		c.Next()
	}
}

// GetUserEmail retrieves the authenticated user's email from the context.
// Returns empty string if not found.
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserName retrieves the authenticated user's name from the context.
// Returns empty string if not found.
func GetUserName(c *gin.Context) string {
	name, exists := c.Get(UserNameKey)
	if !exists {
		return ""
	}
	return name.(string)
}
