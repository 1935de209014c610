package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTManager(t *testing.T) {
	t.Run("creates manager with valid config", func(t *testing.T) {
		manager := NewJWTManager("testsecret", time.Hour)

		assert.NotNil(t, manager)
	})

	t.Run("creates manager with empty secret", func(t *testing.T) {
		manager := NewJWTManager("", time.Hour)

		assert.NotNil(t, manager)
	})
}

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", time.Hour)

	t.Run("generates valid token for an email", func(t *testing.T) {
		token, err := manager.GenerateToken("user@example.com", "John Doe")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		// Token should be a valid JWT format (3 parts separated by dots)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
	})

	t.Run("token carries the identity claims", func(t *testing.T) {
		token, _ := manager.GenerateToken("user@example.com", "John Doe")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, "John Doe", claims.Name)
	})

	t.Run("name claim is optional", func(t *testing.T) {
		token, _ := manager.GenerateToken("user@example.com", "")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Empty(t, claims.Name)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", time.Hour)

	t.Run("validates correctly signed token", func(t *testing.T) {
		token, _ := manager.GenerateToken("user@example.com", "John Doe")

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("rejects token signed with different secret", func(t *testing.T) {
		other := NewJWTManager("othersecret", time.Hour)
		token, _ := other.GenerateToken("user@example.com", "John Doe")

		_, err := manager.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("testsecret123", -time.Hour)
		token, _ := expired.GenerateToken("user@example.com", "John Doe")

		_, err := manager.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")

		assert.Error(t, err)
	})

	t.Run("rejects token without email claim", func(t *testing.T) {
		token, _ := manager.GenerateToken("", "No Email")

		_, err := manager.ValidateToken(token)

		assert.Error(t, err)
	})

	t.Run("expiry honours the configured duration", func(t *testing.T) {
		token, _ := manager.GenerateToken("user@example.com", "")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		remaining := time.Until(claims.ExpiresAt.Time)
		assert.Greater(t, remaining, 59*time.Minute)
		assert.LessOrEqual(t, remaining, time.Hour)
	})
}
