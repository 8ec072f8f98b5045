package service

import (
	"context"
	"testing"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	repomocks "ceslar/internal/repository/mocks"
	storagemocks "ceslar/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func editorOf(churchID primitive.ObjectID) *authz.Claims {
	return &authz.Claims{
		UID:         primitive.NewObjectID().Hex(),
		SystemRole:  authz.SystemRoleUser,
		ChurchRoles: authz.ChurchRoles{churchID.Hex(): authz.RoleStaff},
	}
}

func memberOf(churchID primitive.ObjectID) *authz.Claims {
	return &authz.Claims{
		UID:         primitive.NewObjectID().Hex(),
		SystemRole:  authz.SystemRoleUser,
		ChurchRoles: authz.ChurchRoles{churchID.Hex(): authz.RoleMember},
	}
}

func TestEventService_ListEvents(t *testing.T) {
	churchID := primitive.NewObjectID()

	tests := []struct {
		name          string
		claims        *authz.Claims
		filter        models.ContentFilter
		wantPublished bool
	}{
		{"anonymous sees published only", nil, models.ContentFilter{ChurchID: churchID.Hex()}, true},
		{"member sees published only", memberOf(churchID), models.ContentFilter{ChurchID: churchID.Hex()}, true},
		{"editor sees drafts of own church", editorOf(churchID), models.ContentFilter{ChurchID: churchID.Hex()}, false},
		{"editor without church filter sees published only", editorOf(churchID), models.ContentFilter{}, true},
		{"editor of another church sees published only", editorOf(primitive.NewObjectID()), models.ContentFilter{ChurchID: churchID.Hex()}, true},
		{"system admin sees drafts", &authz.Claims{SystemRole: authz.SystemRoleAdmin}, models.ContentFilter{ChurchID: churchID.Hex()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := repomocks.NewMockEventRepository(ctrl)
			store := &fakeStore[models.Event]{}
			mockRepo.EXPECT().Store().Return(store)

			service := NewEventService(mockRepo, nil, nil)
			_, err := service.ListEvents(context.Background(), tt.claims, tt.filter, pagination.Request{Page: 1, Limit: 10})
			require.NoError(t, err)

			published, ok := filterValue(store.lastQuery(), "published")
			assert.Equal(t, tt.wantPublished, ok)
			if ok {
				assert.Equal(t, true, published)
			}
			if tt.filter.ChurchID != "" {
				v, _ := filterValue(store.lastQuery(), "churchId")
				assert.Equal(t, churchID, v)
			}
		})
	}

	t.Run("malformed church filter is a query error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewEventService(repomocks.NewMockEventRepository(ctrl), nil, nil)

		_, err := service.ListEvents(context.Background(), nil, models.ContentFilter{ChurchID: "zzz"}, pagination.Request{Page: 1})

		assert.ErrorIs(t, err, apperrors.ErrQueryConstruction)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	churchID := primitive.NewObjectID()
	draft := &models.Event{ID: primitive.NewObjectID(), ChurchID: churchID, Published: false}

	t.Run("draft is hidden from members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockEventRepository(ctrl)
		mockRepo.EXPECT().FindByID(gomock.Any(), draft.ID).Return(draft, nil)

		service := NewEventService(mockRepo, nil, nil)
		_, err := service.GetEvent(context.Background(), memberOf(churchID), draft.ID.Hex())

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("draft is visible to editors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockEventRepository(ctrl)
		mockRepo.EXPECT().FindByID(gomock.Any(), draft.ID).Return(draft, nil)

		service := NewEventService(mockRepo, nil, nil)
		got, err := service.GetEvent(context.Background(), editorOf(churchID), draft.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
	})
}

func TestEventService_CreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockEventRepository(ctrl)
	stats := &fakeEnqueuer{}
	churchID := primitive.NewObjectID()
	claims := editorOf(churchID)

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e *models.Event) error {
			assert.Equal(t, churchID, e.ChurchID)
			assert.Equal(t, claims.UID, e.CreatedBy.Hex())
			return nil
		})

	service := NewEventService(mockRepo, stats, nil)
	event, err := service.CreateEvent(context.Background(), claims, &models.CreateEventRequest{
		ChurchID: churchID.Hex(), Title: "Youth Night", Published: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Youth Night", event.Title)
	assert.Equal(t, []primitive.ObjectID{churchID}, stats.churches)
}

func TestEventService_UpdateEvent(t *testing.T) {
	churchID := primitive.NewObjectID()
	event := func() *models.Event {
		return &models.Event{ID: primitive.NewObjectID(), ChurchID: churchID, Title: "Old", ImageKey: "old.png"}
	}

	t.Run("rejects an event of another church", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockEventRepository(ctrl)
		e := event()
		mockRepo.EXPECT().FindByID(gomock.Any(), e.ID).Return(e, nil)

		service := NewEventService(mockRepo, nil, nil)
		title := "New"
		_, err := service.UpdateEvent(context.Background(), primitive.NewObjectID().Hex(), e.ID.Hex(), &models.UpdateEventRequest{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrChurchMismatch)
	})

	t.Run("system admin without church id may update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockEventRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		stats := &fakeEnqueuer{}
		e := event()
		title, image, published := "New", "new.png", true

		mockRepo.EXPECT().FindByID(gomock.Any(), e.ID).Return(e, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		mockStorage.EXPECT().DeleteObject(gomock.Any(), "old.png").Return(nil)
		mockStorage.EXPECT().GetPresignedURL(gomock.Any(), "new.png", presignedURLExpiry).Return("https://media.example/new.png", nil)

		service := NewEventService(mockRepo, stats, mockStorage)
		got, err := service.UpdateEvent(context.Background(), "", e.ID.Hex(), &models.UpdateEventRequest{
			Title: &title, ImageKey: &image, Published: &published,
		})

		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
		assert.Equal(t, "https://media.example/new.png", got.ImageURL)
		assert.Equal(t, []primitive.ObjectID{churchID}, stats.churches)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockEventRepository(ctrl)
	churchID := primitive.NewObjectID()
	e := &models.Event{ID: primitive.NewObjectID(), ChurchID: churchID, Published: true}
	stats := &fakeEnqueuer{}

	mockRepo.EXPECT().FindByID(gomock.Any(), e.ID).Return(e, nil)
	mockRepo.EXPECT().SoftDelete(gomock.Any(), e.ID).Return(nil)

	service := NewEventService(mockRepo, stats, nil)

	require.NoError(t, service.DeleteEvent(context.Background(), churchID.Hex(), e.ID.Hex()))
	assert.Equal(t, []primitive.ObjectID{churchID}, stats.churches)
}

func TestSermonService_ListSermons(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockSermonRepository(ctrl)
	store := &fakeStore[models.Sermon]{}
	mockRepo.EXPECT().Store().Return(store)

	service := NewSermonService(mockRepo, nil, nil)
	_, err := service.ListSermons(context.Background(), nil, models.ContentFilter{Preacher: "Pr. Juan"}, pagination.Request{Page: 1})
	require.NoError(t, err)

	q := store.lastQuery()
	assert.Equal(t, []pagination.Order{{Field: "date", Direction: pagination.Desc}}, q.OrderBy)
	preacher, _ := filterValue(q, "preacher")
	assert.Equal(t, "Pr. Juan", preacher)
	_, hasSeries := filterValue(q, "series")
	assert.False(t, hasSeries)
}

func TestSermonService_DeleteSermonMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockSermonRepository(ctrl)
	s := &models.Sermon{ID: primitive.NewObjectID(), ChurchID: primitive.NewObjectID()}
	mockRepo.EXPECT().FindByID(gomock.Any(), s.ID).Return(s, nil)

	service := NewSermonService(mockRepo, nil, nil)
	err := service.DeleteSermon(context.Background(), primitive.NewObjectID().Hex(), s.ID.Hex())

	assert.ErrorIs(t, err, apperrors.ErrChurchMismatch)
}

func TestMinistryService_ListMinistries(t *testing.T) {
	churchID := primitive.NewObjectID()
	inactive := false

	t.Run("non-editors only see active ministries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockMinistryRepository(ctrl)
		store := &fakeStore[models.Ministry]{}
		mockRepo.EXPECT().Store().Return(store)

		service := NewMinistryService(mockRepo, nil)
		_, err := service.ListMinistries(context.Background(), memberOf(churchID),
			models.ContentFilter{ChurchID: churchID.Hex(), IsActive: &inactive}, pagination.Request{Page: 1})
		require.NoError(t, err)

		v, _ := filterValue(store.lastQuery(), "isActive")
		assert.Equal(t, true, v)
		assert.Equal(t, []pagination.Order{{Field: "name", Direction: pagination.Asc}}, store.lastQuery().OrderBy)
	})

	t.Run("editors may filter on inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockMinistryRepository(ctrl)
		store := &fakeStore[models.Ministry]{}
		mockRepo.EXPECT().Store().Return(store)

		service := NewMinistryService(mockRepo, nil)
		_, err := service.ListMinistries(context.Background(), editorOf(churchID),
			models.ContentFilter{ChurchID: churchID.Hex(), IsActive: &inactive}, pagination.Request{Page: 1})
		require.NoError(t, err)

		v, _ := filterValue(store.lastQuery(), "isActive")
		assert.Equal(t, &inactive, v)
	})
}

func TestMinistryService_CreateMinistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockMinistryRepository(ctrl)
	churchID := primitive.NewObjectID()
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	service := NewMinistryService(mockRepo, nil)
	m, err := service.CreateMinistry(context.Background(), editorOf(churchID), &models.CreateMinistryRequest{
		ChurchID: churchID.Hex(), Name: "Worship Team",
	})

	require.NoError(t, err)
	assert.True(t, m.IsActive)
}
