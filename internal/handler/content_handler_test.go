package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventHandler_ListEvents(t *testing.T) {
	churchID := primitive.NewObjectID().Hex()
	editor := &authz.Claims{UID: "u1", ChurchRoles: authz.ChurchRoles{churchID: authz.RoleStaff}}

	tests := []struct {
		name   string
		caller *authz.Claims
	}{
		{"anonymous", nil},
		{"editor", editor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotClaims *authz.Claims
				gotFilter models.ContentFilter
			)
			mockService := &mocks.MockEventService{
				ListEventsFunc: func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Event], error) {
					gotClaims, gotFilter = claims, filter
					return &pagination.Result[models.Event]{Data: []models.Event{}, Pagination: pagination.OffsetInfo{Page: 1, Limit: req.Limit}}, nil
				},
			}

			router := gin.New()
			router.GET("/events", asCaller(tt.caller), NewEventHandler(mockService).ListEvents)

			w := performRequest(router, http.MethodGet, "/events?churchId="+churchID+"&category=youth", nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.caller, gotClaims)
			assert.Equal(t, churchID, gotFilter.ChurchID)
			assert.Equal(t, "youth", gotFilter.Category)
		})
	}
}

func TestEventHandler_ListEvents_MalformedChurchID(t *testing.T) {
	mockService := &mocks.MockEventService{
		ListEventsFunc: func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Event], error) {
			return nil, apperrors.QueryError("malformed churchId %q", filter.ChurchID)
		},
	}

	router := gin.New()
	router.GET("/events", NewEventHandler(mockService).ListEvents)

	w := performRequest(router, http.MethodGet, "/events?churchId=not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventHandler_GetEvent_DraftHidden(t *testing.T) {
	mockService := &mocks.MockEventService{
		GetEventFunc: func(ctx context.Context, claims *authz.Claims, id string) (*models.Event, error) {
			return nil, apperrors.ErrEventNotFound
		},
	}

	router := gin.New()
	router.GET("/events/:id", NewEventHandler(mockService).GetEvent)

	w := performRequest(router, http.MethodGet, "/events/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventHandler_CreateEvent(t *testing.T) {
	churchID := primitive.NewObjectID().Hex()
	caller := &authz.Claims{UID: primitive.NewObjectID().Hex(), ChurchRoles: authz.ChurchRoles{churchID: authz.RoleLeader}}

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name: "created",
			body: models.CreateEventRequest{
				ChurchID: churchID,
				Title:    "Youth Night",
				StartsAt: time.Date(2024, 2, 2, 19, 0, 0, 0, time.UTC),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing start time",
			body:           map[string]string{"churchId": churchID, "title": "Youth Night"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed church id",
			body:           map[string]string{"churchId": "abc", "title": "Youth Night", "startsAt": "2024-02-02T19:00:00Z"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *authz.Claims
			mockService := &mocks.MockEventService{
				CreateEventFunc: func(ctx context.Context, claims *authz.Claims, req *models.CreateEventRequest) (*models.Event, error) {
					gotClaims = claims
					return &models.Event{ID: primitive.NewObjectID(), Title: req.Title}, nil
				},
			}

			router := gin.New()
			router.POST("/events", asCaller(caller), NewEventHandler(mockService).CreateEvent)

			w := performRequest(router, http.MethodPost, "/events", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusCreated {
				assert.Same(t, caller, gotClaims)
			}
		})
	}
}

func TestEventHandler_UpdateAndDelete_UseGatedChurch(t *testing.T) {
	gated := primitive.NewObjectID().Hex()
	eventID := primitive.NewObjectID().Hex()

	var calls []string
	mockService := &mocks.MockEventService{
		UpdateEventFunc: func(ctx context.Context, churchID, id string, req *models.UpdateEventRequest) (*models.Event, error) {
			calls = append(calls, "update:"+churchID+":"+id)
			return &models.Event{Title: *req.Title}, nil
		},
		DeleteEventFunc: func(ctx context.Context, churchID, id string) error {
			calls = append(calls, "delete:"+churchID+":"+id)
			return apperrors.ErrChurchMismatch
		},
	}
	h := NewEventHandler(mockService)

	router := gin.New()
	router.PUT("/events/:id", gatedTo(gated), h.UpdateEvent)
	router.DELETE("/events/:id", gatedTo(gated), h.DeleteEvent)

	w := performRequest(router, http.MethodPut, "/events/"+eventID, map[string]string{"churchId": gated, "title": "Youth Night II"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodDelete, "/events/"+eventID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.Equal(t, []string{
		"update:" + gated + ":" + eventID,
		"delete:" + gated + ":" + eventID,
	}, calls)
}

func TestSermonHandler_ListSermons(t *testing.T) {
	var gotFilter models.ContentFilter
	mockService := &mocks.MockSermonService{
		ListSermonsFunc: func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Sermon], error) {
			gotFilter = filter
			return &pagination.Result[models.Sermon]{Data: []models.Sermon{{Title: "The Good Shepherd"}}, Pagination: pagination.OffsetInfo{Page: 1, Limit: 10, Total: 1, TotalPages: 1}}, nil
		},
	}

	router := gin.New()
	router.GET("/sermons", NewSermonHandler(mockService).ListSermons)

	w := performRequest(router, http.MethodGet, "/sermons?preacher=Pr.+Juan+Perez&series=John", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pr. Juan Perez", gotFilter.Preacher)
	assert.Equal(t, "John", gotFilter.Series)
}

func TestSermonHandler_CreateSermon(t *testing.T) {
	mockService := &mocks.MockSermonService{
		CreateSermonFunc: func(ctx context.Context, claims *authz.Claims, req *models.CreateSermonRequest) (*models.Sermon, error) {
			return &models.Sermon{Title: req.Title, Preacher: req.Preacher}, nil
		},
	}

	router := gin.New()
	router.POST("/sermons", NewSermonHandler(mockService).CreateSermon)

	w := performRequest(router, http.MethodPost, "/sermons", models.CreateSermonRequest{
		ChurchID: primitive.NewObjectID().Hex(),
		Title:    "The Good Shepherd",
		Preacher: "Pr. Juan Perez",
		Date:     time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodPost, "/sermons", map[string]string{"title": "No church"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMinistryHandler_ListMinistries_IsActiveFilter(t *testing.T) {
	var gotFilter models.ContentFilter
	mockService := &mocks.MockMinistryService{
		ListMinistriesFunc: func(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Ministry], error) {
			gotFilter = filter
			return &pagination.Result[models.Ministry]{Data: []models.Ministry{}, Pagination: pagination.OffsetInfo{Page: 1, Limit: 10}}, nil
		},
	}

	router := gin.New()
	router.GET("/ministries", NewMinistryHandler(mockService).ListMinistries)

	w := performRequest(router, http.MethodGet, "/ministries?isActive=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFilter.IsActive)
	assert.False(t, *gotFilter.IsActive)

	w = performRequest(router, http.MethodGet, "/ministries?isActive=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMinistryHandler_DeleteMinistry(t *testing.T) {
	gated := primitive.NewObjectID().Hex()
	var gotChurch string
	mockService := &mocks.MockMinistryService{
		DeleteMinistryFunc: func(ctx context.Context, churchID, id string) error {
			gotChurch = churchID
			if id == "missing" {
				return apperrors.ErrMinistryNotFound
			}
			return nil
		},
	}

	router := gin.New()
	router.DELETE("/ministries/:id", gatedTo(gated), NewMinistryHandler(mockService).DeleteMinistry)

	assert.Equal(t, http.StatusOK, performRequest(router, http.MethodDelete, "/ministries/m1", nil).Code)
	assert.Equal(t, gated, gotChurch)
	assert.Equal(t, http.StatusNotFound, performRequest(router, http.MethodDelete, "/ministries/missing", nil).Code)
}
