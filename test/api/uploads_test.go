//go:build api

package api

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"forum-api/internal/models"
	"forum-api/test/api/testserver"
	"forum-api/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRequestUpload tests the POST /uploads endpoint against real MinIO.
func TestRequestUpload(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - presigned URL accepts the upload", func(t *testing.T) {
		token := authHelper.TokenFor(t, "uploader@example.com", "Uploader")

		req := models.RequestUploadRequest{
			FileName:    "avatar.png",
			ContentType: "image/png",
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/uploads", token, req)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		key, _ := resp.Data["key"].(string)
		uploadURL, _ := resp.Data["uploadUrl"].(string)
		require.NotEmpty(t, key)
		require.NotEmpty(t, uploadURL)
		assert.True(t, strings.HasSuffix(key, "-avatar.png"))
		assert.Equal(t, float64(900), resp.Data["expiresIn"])

		// PUT the object through the presigned URL
		putReq, err := http.NewRequest(http.MethodPut, uploadURL, bytes.NewBufferString("fake image bytes"))
		require.NoError(t, err)
		putReq.Header.Set("Content-Type", "image/png")

		putResp, err := http.DefaultClient.Do(putReq)
		require.NoError(t, err)
		defer putResp.Body.Close()
		require.Equal(t, http.StatusOK, putResp.StatusCode)

		assert.True(t, testServer.MinIO.ObjectExists(context.Background(), key))
	})

	t.Run("error - unauthorized without token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/uploads",
			models.RequestUploadRequest{FileName: "avatar.png"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - missing file name", func(t *testing.T) {
		token := authHelper.TokenFor(t, "uploader@example.com", "Uploader")

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/uploads", token,
			map[string]string{"contentType": "image/png"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestDownloadURL tests the GET /uploads/url/:key endpoint.
func TestDownloadURL(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)

	t.Run("success - presigned URL serves the object", func(t *testing.T) {
		token := authHelper.TokenFor(t, "uploader@example.com", "Uploader")

		// Upload an object first
		uw := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/uploads", token,
			models.RequestUploadRequest{FileName: "banner.jpg", ContentType: "image/jpeg"})
		uresp := testutil.ParseAPIResponse(t, uw)
		key := uresp.Data["key"].(string)
		uploadURL := uresp.Data["uploadUrl"].(string)

		putReq, err := http.NewRequest(http.MethodPut, uploadURL, bytes.NewBufferString("banner bytes"))
		require.NoError(t, err)
		putReq.Header.Set("Content-Type", "image/jpeg")
		putResp, err := http.DefaultClient.Do(putReq)
		require.NoError(t, err)
		putResp.Body.Close()
		require.Equal(t, http.StatusOK, putResp.StatusCode)

		// Fetch a download URL and read the object back
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/uploads/url/"+key, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		downloadURL, _ := resp.Data["url"].(string)
		require.NotEmpty(t, downloadURL)

		getResp, err := http.Get(downloadURL)
		require.NoError(t, err)
		defer getResp.Body.Close()
		assert.Equal(t, http.StatusOK, getResp.StatusCode)
	})
}
