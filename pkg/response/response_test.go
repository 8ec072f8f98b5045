package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	data := map[string]string{"message": "hello"}
	Success(c, data)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	data := map[string]string{"id": "123"}
	Created(c, data)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestNoContent(t *testing.T) {
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		NoContent(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError(t *testing.T) {
	c, w := setupTestContext()

	Error(c, http.StatusTeapot, "I'm a teapot")

	assert.Equal(t, http.StatusTeapot, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "I'm a teapot", resp.Error)
}

func TestBadRequest(t *testing.T) {
	c, w := setupTestContext()

	BadRequest(c, "invalid input")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid input", resp.Error)
}

func TestUnauthorized(t *testing.T) {
	c, w := setupTestContext()

	Unauthorized(c, "not authenticated")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "not authenticated", resp.Error)
}

func TestForbidden(t *testing.T) {
	c, w := setupTestContext()

	Forbidden(c, "access denied")

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "access denied", resp.Error)
}

func TestNotFound(t *testing.T) {
	c, w := setupTestContext()

	NotFound(c, "resource not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "resource not found", resp.Error)
}

func TestConflict(t *testing.T) {
	c, w := setupTestContext()

	Conflict(c, "resource already exists")

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "resource already exists", resp.Error)
}

func TestInternalError(t *testing.T) {
	c, w := setupTestContext()

	InternalError(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "internal server error", resp.Error)
}

func TestResponseJSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		expected string
	}{
		{
			name: "success with data",
			response: Response{
				Success: true,
				Data:    map[string]string{"key": "value"},
			},
			expected: `{"success":true,"data":{"key":"value"}}`,
		},
		{
			name: "error response",
			response: Response{
				Success: false,
				Error:   "something went wrong",
			},
			expected: `{"success":false,"error":"something went wrong"}`,
		},
		{
			name: "success without data",
			response: Response{
				Success: true,
			},
			expected: `{"success":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.response)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func TestPaginated(t *testing.T) {
	t.Run("offset page", func(t *testing.T) {
		c, w := setupTestContext()

		Paginated(c, &pagination.Result[string]{
			Data:       []string{"a", "b"},
			Pagination: pagination.OffsetInfo{Total: 12, Page: 2, Limit: 2, TotalPages: 6, HasNext: true, HasPrev: true},
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"success": true,
			"data": ["a", "b"],
			"pagination": {"total": 12, "page": 2, "limit": 2, "totalPages": 6, "hasNext": true, "hasPrev": true}
		}`, w.Body.String())
	})

	t.Run("last cursor page has a null cursor", func(t *testing.T) {
		c, w := setupTestContext()

		Paginated(c, &pagination.Result[string]{
			Data:       []string{},
			Pagination: pagination.CursorInfo{Limit: 10},
		})

		assert.JSONEq(t, `{
			"success": true,
			"data": [],
			"pagination": {"limit": 10, "hasMore": false, "nextCursor": null}
		}`, w.Body.String())
	})
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not authenticated", apperrors.ErrNotAuthenticated, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"missing identifier", &apperrors.MissingIdentifierError{Name: "churchId", Sources: []string{"path"}}, http.StatusBadRequest},
		{"insufficient permission", &apperrors.PermissionError{Requirement: "church role"}, http.StatusForbidden},
		{"church mismatch", apperrors.ErrChurchMismatch, http.StatusForbidden},
		{"query construction", apperrors.QueryError("bad operator"), http.StatusBadRequest},
		{"store unavailable", apperrors.StoreError(errors.New("timeout")), http.StatusInternalServerError},
		{"not found", fmt.Errorf("load: %w", apperrors.ErrEventNotFound), http.StatusNotFound},
		{"conflict", apperrors.ErrChurchSlugTaken, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestFromError(t *testing.T) {
	t.Run("classified error keeps its message", func(t *testing.T) {
		c, w := setupTestContext()
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		FromError(c, &apperrors.PermissionError{Requirement: "church role", Allowed: []string{"admin"}})

		assert.Equal(t, http.StatusForbidden, w.Code)
		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "admin")
	})

	t.Run("internal error hides details", func(t *testing.T) {
		c, w := setupTestContext()
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		FromError(c, apperrors.StoreError(errors.New("mongo: connection refused 10.0.0.3")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.3")
	})

	t.Run("abort stops the chain", func(t *testing.T) {
		router := gin.New()
		reached := false
		router.GET("/x", func(c *gin.Context) {
			AbortWithError(c, apperrors.ErrNotAuthenticated)
		}, func(c *gin.Context) {
			reached = true
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, reached)
	})
}
