//go:build api

package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"ceslar/internal/authz"
	"ceslar/internal/models"
	"ceslar/test/api/testserver"
	"ceslar/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUploads covers presigned media uploads against MinIO.
func TestUploads(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	authHelper := testserver.NewAuthHelper(testServer)
	churchHelper := testserver.NewChurchHelper(testServer)
	ctx := context.Background()

	central := churchHelper.SeedChurch(t, "Iglesia Central", "iglesia-central", "Lima")
	norte := churchHelper.SeedChurch(t, "Iglesia del Norte", "iglesia-del-norte", "Lima")
	staff, staffToken := authHelper.CreateUser(t, "Staff", "staff@central.org")
	churchHelper.SeedMember(t, central.ID, staff.ID, authz.RoleStaff)
	_, memberToken := authHelper.CreateUser(t, "Member", "member@central.org")

	uploadsURL := "/api/v1/churches/" + central.ID.Hex() + "/uploads"

	t.Run("success - presigned put under the church prefix", func(t *testing.T) {
		w := testutil.Request(t, testServer.Router, http.MethodPost, uploadsURL, staffToken, models.CreateUploadRequest{
			Kind:        models.UploadSermon,
			ContentType: "audio/mpeg",
			Extension:   "MP3",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		upload := testutil.Data[models.UploadResponse](t, w)
		assert.True(t, strings.HasPrefix(upload.Key, "churches/"+central.ID.Hex()+"/sermon/"), upload.Key)
		assert.True(t, strings.HasSuffix(upload.Key, ".mp3"))
		assert.Equal(t, http.MethodPut, upload.Method)

		u, err := url.Parse(upload.UploadURL)
		require.NoError(t, err)
		assert.Equal(t, testServer.MinIO.Endpoint, u.Host)
		assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	})

	t.Run("error - unknown kind", func(t *testing.T) {
		w := testutil.Request(t, testServer.Router, http.MethodPost, uploadsURL, staffToken, map[string]string{
			"kind":        "video",
			"contentType": "video/mp4",
			"extension":   "mp4",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error - non-editors", func(t *testing.T) {
		w := testutil.Request(t, testServer.Router, http.MethodPost, uploadsURL, memberToken, models.CreateUploadRequest{
			Kind:        models.UploadLogo,
			ContentType: "image/png",
			Extension:   "png",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("success - delete removes the object", func(t *testing.T) {
		key := "churches/" + central.ID.Hex() + "/logo/old.png"
		require.NoError(t, testServer.MinIO.PutObject(ctx, key, "png"))

		w := testutil.Request(t, testServer.Router, http.MethodDelete, uploadsURL+"?key="+url.QueryEscape(key), staffToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		assert.False(t, testServer.MinIO.ObjectExists(ctx, key))
	})

	t.Run("error - key outside the church prefix", func(t *testing.T) {
		key := "churches/" + norte.ID.Hex() + "/logo/theirs.png"
		require.NoError(t, testServer.MinIO.PutObject(ctx, key, "png"))

		w := testutil.Request(t, testServer.Router, http.MethodDelete, uploadsURL+"?key="+url.QueryEscape(key), staffToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.True(t, testServer.MinIO.ObjectExists(ctx, key))
	})

	t.Run("error - missing key", func(t *testing.T) {
		w := testutil.Request(t, testServer.Router, http.MethodDelete, uploadsURL, staffToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
