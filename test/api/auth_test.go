//go:build api

package api

import (
	"net/http"
	"testing"

	"forum-api/internal/models"
	"forum-api/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIssueToken tests the POST /jwt endpoint.
func TestIssueToken(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("success - issues a token for any email", func(t *testing.T) {
		req := models.IssueTokenRequest{
			Email: "user@example.com",
			Name:  "John Doe",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/jwt", req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)
		assert.NotEmpty(t, resp.Data["token"])
	})

	t.Run("success - issued token is accepted by protected routes", func(t *testing.T) {
		token := testutil.ParseAPIResponse(t,
			testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/jwt",
				models.IssueTokenRequest{Email: "user@example.com", Name: "John Doe"}),
		).Data["token"].(string)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/membership/user@example.com", token, nil)

		// Identity is accepted; the user just doesn't exist yet
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - missing email", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/jwt", map[string]string{"name": "John Doe"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - malformed email", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/jwt", map[string]string{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - protected route rejects garbage token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/membership/user@example.com", "garbage.token.here", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
