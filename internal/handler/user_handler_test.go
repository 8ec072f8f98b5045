package handler

import (
	"context"
	"net/http"
	"testing"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_ListUsers(t *testing.T) {
	next := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		query      string
		wantCursor string
		wantLimit  int
	}{
		{"first page is cursor mode", "", "", pagination.DefaultLimit},
		{"continues from cursor", "?cursor=" + next + "&limit=5", next, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got pagination.Request
			mockService := &mocks.MockUserService{
				ListUsersFunc: func(ctx context.Context, req pagination.Request) (*pagination.Result[models.User], error) {
					got = req
					return &pagination.Result[models.User]{
						Data:       []models.User{{ID: primitive.NewObjectID(), Name: "Maria"}},
						Pagination: pagination.CursorInfo{Limit: req.Limit, HasMore: true, NextCursor: &next},
					}, nil
				},
			}

			router := gin.New()
			router.GET("/users", NewUserHandler(mockService).ListUsers)

			w := performRequest(router, http.MethodGet, "/users"+tt.query, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, got.IsCursor())
			assert.Equal(t, tt.wantCursor, got.Cursor)
			assert.Equal(t, tt.wantLimit, got.Limit)

			resp := decodeResponse(t, w)
			page := resp["pagination"].(map[string]any)
			assert.Equal(t, true, page["hasMore"])
			assert.Equal(t, next, page["nextCursor"])
		})
	}
}

func TestUserHandler_GetUser(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"found", nil, http.StatusOK},
		{"not found", apperrors.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			mockService := &mocks.MockUserService{
				GetUserFunc: func(ctx context.Context, id string) (*models.User, error) {
					gotID = id
					if tt.err != nil {
						return nil, tt.err
					}
					return &models.User{ID: userID, Email: "maria@example.com"}, nil
				},
			}

			router := gin.New()
			router.GET("/users/:userId", NewUserHandler(mockService).GetUser)

			w := performRequest(router, http.MethodGet, "/users/"+userID.Hex(), nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, userID.Hex(), gotID)
		})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	mockService := &mocks.MockUserService{
		UpdateUserFunc: func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
			return &models.User{Name: *req.Name}, nil
		},
	}

	router := gin.New()
	router.PUT("/users/:userId", NewUserHandler(mockService).UpdateUser)

	w := performRequest(router, http.MethodPut, "/users/u1", map[string]string{"name": "Maria L."})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maria L.", decodeResponse(t, w)["data"].(map[string]any)["name"])

	w = performRequest(router, http.MethodPut, "/users/u1", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_UpdateAccess(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name:           "grant admin with permissions",
			body:           models.UpdateAccessRequest{SystemRole: authz.SystemRoleAdmin, Permissions: []authz.Permission{authz.PermDeleteAll}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown system role",
			body:           map[string]any{"systemRole": "root"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown permission",
			body:           map[string]any{"systemRole": "user", "permissions": []string{"fly:away"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{
				UpdateAccessFunc: func(ctx context.Context, id string, req *models.UpdateAccessRequest) (*models.User, error) {
					return &models.User{SystemRole: req.SystemRole, Permissions: req.Permissions}, nil
				},
			}

			router := gin.New()
			router.PUT("/users/:userId/access", NewUserHandler(mockService).UpdateAccess)

			w := performRequest(router, http.MethodPut, "/users/u1/access", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	mockService := &mocks.MockUserService{
		DeleteUserFunc: func(ctx context.Context, id string) error {
			if id == "missing" {
				return apperrors.ErrUserNotFound
			}
			return nil
		},
	}

	router := gin.New()
	router.DELETE("/users/:userId", NewUserHandler(mockService).DeleteUser)

	assert.Equal(t, http.StatusOK, performRequest(router, http.MethodDelete, "/users/u1", nil).Code)
	assert.Equal(t, http.StatusNotFound, performRequest(router, http.MethodDelete, "/users/missing", nil).Code)
}
