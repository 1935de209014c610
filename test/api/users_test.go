//go:build api

package api

import (
	"net/http"
	"testing"

	"forum-api/internal/models"
	"forum-api/test/api/testserver"
	"forum-api/test/fixtures"
	"forum-api/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestRegisterUser tests the POST /users endpoint.
func TestRegisterUser(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	t.Run("success - creates new user", func(t *testing.T) {
		req := models.RegisterUserRequest{
			Name:  "John Doe",
			Email: "john@example.com",
		}

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users", req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data["insertedId"])
	})

	t.Run("success - duplicate registration returns null insertedId", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		authHelper := testserver.NewAuthHelper(testServer)
		authHelper.RegisterUser(t, "John Doe", "john@example.com")

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users",
			models.RegisterUserRequest{Name: "Johnny", Email: "john@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		assert.Nil(t, resp.Data["insertedId"])
	})

	t.Run("error - missing name", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/users",
			map[string]string{"email": "noname@example.com"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestGetAllUsers tests the GET /users endpoint.
func TestGetAllUsers(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - admin lists all users", func(t *testing.T) {
		adminToken := authHelper.SeedAdmin(t, "Jane Admin", "admin@example.com")
		authHelper.RegisterUser(t, "User A", "usera@example.com")
		authHelper.RegisterUser(t, "User B", "userb@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIListResponse(t, w)
		assert.True(t, resp.Success)
		assert.Len(t, resp.Data, 3)
	})

	t.Run("error - non-admin forbidden", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		token := authHelper.CreateAuthenticatedUser(t, "Regular User", "regular@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unauthorized without token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestAdminStatus tests the GET /users/admin/:email endpoint.
func TestAdminStatus(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - admin sees admin=true", func(t *testing.T) {
		adminToken := authHelper.SeedAdmin(t, "Jane Admin", "admin@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/admin/admin@example.com", adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, true, resp.Data["admin"])
	})

	t.Run("success - regular user sees admin=false", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		token := authHelper.CreateAuthenticatedUser(t, "Regular User", "regular@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/admin/regular@example.com", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, false, resp.Data["admin"])
	})

	t.Run("error - cannot check someone else's status", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		token := authHelper.CreateAuthenticatedUser(t, "Nosy User", "nosy@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/admin/other@example.com", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestMembership tests the GET /users/membership/:email endpoint.
func TestMembership(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - gold member badge and post count", func(t *testing.T) {
		user := fixtures.NewUser().
			WithEmail("gold@example.com").
			AsGoldMember().
			WithPostCount(7).
			BuildPtr()
		authHelper.SeedUserRaw(t, user)
		token := authHelper.TokenFor(t, "gold@example.com", user.Name)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/membership/gold@example.com", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, models.BadgeGold, resp.Data["badge"])
		assert.Equal(t, float64(7), resp.Data["postCount"])
	})

	t.Run("success - user without badge reports None", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		token := authHelper.CreateAuthenticatedUser(t, "Free User", "free@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/membership/free@example.com", token, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, models.BadgeNone, resp.Data["badge"])
	})

	t.Run("error - unknown user", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		token := authHelper.TokenFor(t, "ghost@example.com", "Ghost")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/membership/ghost@example.com", token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestUpgradeMembership tests the PATCH /users/member/:email endpoint.
func TestUpgradeMembership(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - sets the Gold badge", func(t *testing.T) {
		authHelper.RegisterUser(t, "Soon Gold", "soongold@example.com")

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPatch, "/users/member/soongold@example.com", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		token := authHelper.TokenFor(t, "soongold@example.com", "Soon Gold")
		mw := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users/membership/soongold@example.com", token, nil)
		resp := testutil.ParseAPIResponse(t, mw)
		assert.Equal(t, models.BadgeGold, resp.Data["badge"])
	})

	t.Run("error - unknown user", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPatch, "/users/member/nobody@example.com", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestPromoteToAdmin tests the PATCH /users/admin/:id endpoint.
func TestPromoteToAdmin(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - admin promotes another user", func(t *testing.T) {
		adminToken := authHelper.SeedAdmin(t, "Jane Admin", "admin@example.com")
		promoted := authHelper.SeedUser(t, &models.User{Name: "Promoted", Email: "promoted@example.com"})

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/users/admin/"+promoted.ID.Hex(), adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		// The promoted user can now reach admin routes
		promotedToken := authHelper.TokenFor(t, "promoted@example.com", "Promoted")
		pw := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/admin/profile", promotedToken, nil)
		assert.Equal(t, http.StatusOK, pw.Code)
	})

	t.Run("error - non-admin forbidden", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		token := authHelper.CreateAuthenticatedUser(t, "Regular User", "regular@example.com")
		victim := authHelper.SeedUser(t, &models.User{Name: "Victim", Email: "victim@example.com"})

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/users/admin/"+victim.ID.Hex(), token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - unknown user id", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		adminToken := authHelper.SeedAdmin(t, "Jane Admin", "admin@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/users/admin/"+primitive.NewObjectID().Hex(), adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestDeleteUser tests the DELETE /users/:id endpoint.
func TestDeleteUser(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - admin deletes a user", func(t *testing.T) {
		adminToken := authHelper.SeedAdmin(t, "Jane Admin", "admin@example.com")
		doomed := authHelper.SeedUser(t, &models.User{Name: "Doomed", Email: "doomed@example.com"})

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/users/"+doomed.ID.Hex(), adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		lw := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/users", adminToken, nil)
		resp := testutil.ParseAPIListResponse(t, lw)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "admin@example.com", resp.Data[0]["email"])
	})

	t.Run("error - unknown user id", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		adminToken := authHelper.SeedAdmin(t, "Jane Admin", "admin@example.com")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/users/"+primitive.NewObjectID().Hex(), adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
