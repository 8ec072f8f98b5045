package service

import (
	"context"
	"errors"
	"testing"

	"ceslar/internal/cache"
	cachemocks "ceslar/internal/cache/mocks"
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

func TestChurchService_ListChurches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockChurchRepository(ctrl)
	mockStorage := storagemocks.NewMockStorage(ctrl)
	store := &fakeStore[models.Church]{docs: []models.Church{
		{ID: primitive.NewObjectID(), Name: "Iglesia Central", LogoKey: "churches/a/logo/1.png"},
		{ID: primitive.NewObjectID(), Name: "Iglesia Norte"},
	}}
	active := true

	mockRepo.EXPECT().Store("igle").Return(store)
	mockStorage.EXPECT().
		GetPresignedURL(gomock.Any(), "churches/a/logo/1.png", presignedURLExpiry).
		Return("https://media.example/logo", nil)

	service := NewChurchService(mockRepo, nil, mockStorage)
	result, err := service.ListChurches(context.Background(),
		models.ChurchFilter{City: "Lima", IsActive: &active, Search: "igle"},
		pagination.Request{Page: 1, Limit: 10},
	)

	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "https://media.example/logo", result.Data[0].LogoURL)
	assert.Empty(t, result.Data[1].LogoURL)

	q := store.lastQuery()
	city, ok := filterValue(q, "city")
	assert.True(t, ok)
	assert.Equal(t, "Lima", city)
	_, ok = filterValue(q, "country")
	assert.False(t, ok, "empty filter must be dropped")
	_, ok = filterValue(q, "isActive")
	assert.True(t, ok)

	info := result.Pagination.(pagination.OffsetInfo)
	assert.Equal(t, 2, info.Total)
}

func TestChurchService_GetChurch(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockChurchRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)

		mockCache.EXPECT().
			Get(gomock.Any(), cache.ChurchCacheKey(id.Hex()), gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest any) (bool, error) {
				*dest.(*models.Church) = models.Church{ID: id, Name: "Cached"}
				return true, nil
			})

		service := NewChurchService(mockRepo, mockCache, nil)
		church, err := service.GetChurch(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Cached", church.Name)
	})

	t.Run("cache miss reads and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockChurchRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		church := &models.Church{ID: id, Name: "Iglesia Central"}

		mockCache.EXPECT().Get(gomock.Any(), cache.ChurchCacheKey(id.Hex()), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(church, nil)
		mockCache.EXPECT().Set(gomock.Any(), cache.ChurchCacheKey(id.Hex()), church, churchCacheTTL).Return(nil)

		service := NewChurchService(mockRepo, mockCache, nil)
		got, err := service.GetChurch(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Iglesia Central", got.Name)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewChurchService(repomocks.NewMockChurchRepository(ctrl), nil, nil)

		_, err := service.GetChurch(context.Background(), "nope")

		assert.ErrorIs(t, err, apperrors.ErrChurchNotFound)
	})
}

func TestChurchService_CreateChurch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockChurchRepository(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, c *models.Church) error {
			assert.True(t, c.IsActive)
			assert.Equal(t, "iglesia-central", c.Slug)
			return nil
		})

	service := NewChurchService(mockRepo, nil, nil)
	church, err := service.CreateChurch(context.Background(), &models.CreateChurchRequest{
		Name: "Iglesia Central", Slug: "iglesia-central", City: "Lima", Country: "PE",
	})

	require.NoError(t, err)
	assert.Equal(t, "Iglesia Central", church.Name)
}

func TestChurchService_UpdateChurch(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("applies fields, evicts cache and removes the replaced logo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockChurchRepository(ctrl)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		name := "Iglesia Central de Lima"
		logo := "churches/x/logo/new.png"

		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Church{
			ID: id, Name: "Iglesia Central", City: "Lima", LogoKey: "churches/x/logo/old.png",
		}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *models.Church) error {
				assert.Equal(t, name, c.Name)
				assert.Equal(t, "Lima", c.City)
				assert.Equal(t, logo, c.LogoKey)
				return nil
			})
		mockCache.EXPECT().Delete(gomock.Any(), cache.ChurchCacheKey(id.Hex())).Return(nil)
		mockStorage.EXPECT().DeleteObject(gomock.Any(), "churches/x/logo/old.png").Return(nil)
		mockStorage.EXPECT().GetPresignedURL(gomock.Any(), logo, presignedURLExpiry).Return("https://media.example/new", nil)

		service := NewChurchService(mockRepo, mockCache, mockStorage)
		church, err := service.UpdateChurch(context.Background(), id.Hex(), &models.UpdateChurchRequest{Name: &name, LogoKey: &logo})

		require.NoError(t, err)
		assert.Equal(t, "https://media.example/new", church.LogoURL)
	})

	t.Run("slug conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := repomocks.NewMockChurchRepository(ctrl)
		slug := "taken"

		mockRepo.EXPECT().FindByID(gomock.Any(), id).Return(&models.Church{ID: id}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(apperrors.ErrChurchSlugTaken)

		service := NewChurchService(mockRepo, nil, nil)
		_, err := service.UpdateChurch(context.Background(), id.Hex(), &models.UpdateChurchRequest{Slug: &slug})

		assert.ErrorIs(t, err, apperrors.ErrChurchSlugTaken)
	})
}

func TestChurchService_UpdateStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockChurchRepository(ctrl)
	mockCache := cachemocks.NewMockCache(ctrl)
	id := primitive.NewObjectID()
	stats := models.ChurchStats{Members: 10}

	mockRepo.EXPECT().UpdateStats(gomock.Any(), id, stats).Return(nil)
	mockCache.EXPECT().Delete(gomock.Any(), cache.ChurchCacheKey(id.Hex())).Return(errors.New("redis down"))

	service := NewChurchService(mockRepo, mockCache, nil)

	assert.NoError(t, service.UpdateStats(context.Background(), id, stats))
}

func TestChurchService_DeleteChurch(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockChurchRepository(ctrl)
	id := primitive.NewObjectID()
	mockRepo.EXPECT().SoftDelete(gomock.Any(), id).Return(apperrors.ErrChurchNotFound)

	service := NewChurchService(mockRepo, nil, nil)

	assert.ErrorIs(t, service.DeleteChurch(context.Background(), id.Hex()), apperrors.ErrChurchNotFound)
}
