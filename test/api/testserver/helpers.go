//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"forum-api/internal/models"
	"forum-api/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides identity helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// TokenFor requests an access token for the given identity via the API.
func (ah *AuthHelper) TokenFor(t *testing.T, email, name string) string {
	t.Helper()

	req := models.IssueTokenRequest{
		Email: email,
		Name:  name,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/jwt", req)
	require.Equal(t, http.StatusOK, w.Code, "token issuance should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "token response should be successful")

	token, ok := resp.Data["token"].(string)
	require.True(t, ok, "token should be a string")

	return token
}

// RegisterUser registers a user via the API and returns the response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email string) map[string]interface{} {
	t.Helper()

	req := models.RegisterUserRequest{
		Name:  name,
		Email: email,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/users", req)
	require.Equal(t, http.StatusOK, w.Code, "register should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "register response should be successful")

	return resp.Data
}

// CreateAuthenticatedUser registers a user and returns their access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email string) string {
	t.Helper()

	ah.RegisterUser(t, name, email)
	return ah.TokenFor(t, email, name)
}

// SeedUser directly inserts a user into the database (bypasses API).
// The repository resets postCount and createdAt; use SeedUserRaw for full
// control over those fields.
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	err := ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// SeedUserRaw directly inserts a user into MongoDB without going through the
// repository, preserving every field including postCount.
func (ah *AuthHelper) SeedUserRaw(t *testing.T, user *models.User) *models.User {
	t.Helper()
	ctx := context.Background()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	collection := ah.server.MongoDB.Database.Collection("users")
	_, err := collection.InsertOne(ctx, user)
	require.NoError(t, err, "failed to seed user directly")

	return user
}

// SeedAdmin inserts an admin user and returns their access token.
func (ah *AuthHelper) SeedAdmin(t *testing.T, name, email string) string {
	t.Helper()

	ah.SeedUser(t, &models.User{
		Name:  name,
		Email: email,
		Role:  models.RoleAdmin,
	})

	return ah.TokenFor(t, email, name)
}

// PostHelper provides post-related helpers for API tests.
type PostHelper struct {
	server *TestServer
}

// NewPostHelper creates a new post helper.
func NewPostHelper(server *TestServer) *PostHelper {
	return &PostHelper{server: server}
}

// CreatePost creates a post via the API and returns the response data.
func (ph *PostHelper) CreatePost(t *testing.T, token, title, tags string) map[string]interface{} {
	t.Helper()

	req := models.CreatePostRequest{
		Title:       title,
		Description: "body of " + title,
		Tags:        tags,
		AuthorName:  "Test User",
	}

	w := testutil.MakeAuthRequest(t, ph.server.Router, http.MethodPost, "/posts", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create post should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create post response should be successful")

	return resp.Data
}

// SeedPost directly inserts a post into the database (bypasses API and quota).
func (ph *PostHelper) SeedPost(t *testing.T, post *models.Post) *models.Post {
	t.Helper()
	ctx := context.Background()

	err := ph.server.PostRepo.Create(ctx, post)
	require.NoError(t, err, "failed to seed post")

	return post
}

// ModerationHelper provides comment and report helpers for API tests.
type ModerationHelper struct {
	server *TestServer
}

// NewModerationHelper creates a new moderation helper.
func NewModerationHelper(server *TestServer) *ModerationHelper {
	return &ModerationHelper{server: server}
}

// SeedComment directly inserts a comment into the database.
func (mh *ModerationHelper) SeedComment(t *testing.T, comment *models.Comment) *models.Comment {
	t.Helper()
	ctx := context.Background()

	err := mh.server.CommentRepo.Create(ctx, comment)
	require.NoError(t, err, "failed to seed comment")

	return comment
}

// SeedReport directly inserts a report into the database.
func (mh *ModerationHelper) SeedReport(t *testing.T, report *models.Report) *models.Report {
	t.Helper()
	ctx := context.Background()

	err := mh.server.ReportRepo.Create(ctx, report)
	require.NoError(t, err, "failed to seed report")

	return report
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts an object id from response data, checking the
// "id" field first and falling back to "insertedId".
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if id, ok := data["insertedId"].(string); ok {
		return id
	}

	t.Fatal("id should be a string in response data (checked: id, insertedId)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	idStr := GetIDFromResponse(t, data)
	oid, err := primitive.ObjectIDFromHex(idStr)
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
