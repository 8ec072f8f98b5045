// Package testutil holds request helpers shared by the API test suites.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Envelope mirrors response.Response with the payload left undecoded.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination json.RawMessage `json:"pagination"`
	Error      string          `json:"error"`
}

// Page is the union of the offset and cursor pagination blocks.
type Page struct {
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
	HasNext    bool    `json:"hasNext"`
	HasPrev    bool    `json:"hasPrev"`
	HasMore    bool    `json:"hasMore"`
	NextCursor *string `json:"nextCursor"`
}

// Request executes a request against h. An empty token sends no
// Authorization header. A string body is sent verbatim so tests can post
// malformed JSON; any other non-nil body is JSON encoded.
func Request(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// ParseEnvelope decodes the standard response wrapper.
func ParseEnvelope(t *testing.T, w *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return env
}

// Data decodes the data field of a successful response into T.
func Data[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	env := ParseEnvelope(t, w)
	require.True(t, env.Success, "expected success, got: %s", w.Body.String())

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

// Pagination decodes the pagination block of a list response.
func Pagination(t *testing.T, w *httptest.ResponseRecorder) Page {
	t.Helper()

	env := ParseEnvelope(t, w)
	require.NotEmpty(t, env.Pagination, "missing pagination block: %s", w.Body.String())

	var p Page
	require.NoError(t, json.Unmarshal(env.Pagination, &p))
	return p
}

// TestContext creates a context with timeout for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
