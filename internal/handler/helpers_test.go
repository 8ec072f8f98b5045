package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ceslar/internal/authz"
	"ceslar/internal/middleware"
	"ceslar/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// performRequest sends body as JSON. A string body is sent verbatim.
func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var raw []byte
	switch v := body.(type) {
	case nil:
	case string:
		raw = []byte(v)
	default:
		raw, _ = json.Marshal(v)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// asCaller stands in for the auth middleware.
func asCaller(claims *authz.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.UserIDKey, claims.UID)
			c.Set(middleware.ClaimsKey, claims)
		}
		c.Next()
	}
}

// gatedTo stands in for a gate that resolved churchID.
func gatedTo(churchID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ChurchIDKey, churchID)
		c.Next()
	}
}
