package service

import (
	"context"
	"log/slog"
	"time"

	"ceslar/internal/cache"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/repository"
	"ceslar/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const churchCacheTTL = 5 * time.Minute

// ChurchService handles business logic for church operations.
type ChurchService struct {
	repo  repository.ChurchRepository
	cache cache.Cache
	media media
}

// NewChurchService creates a new ChurchService. cache and store may be nil.
func NewChurchService(repo repository.ChurchRepository, c cache.Cache, store storage.Storage) *ChurchService {
	return &ChurchService{
		repo:  repo,
		cache: c,
		media: media{store: store},
	}
}

// ListChurches returns one page of live churches.
func (s *ChurchService) ListChurches(ctx context.Context, filter models.ChurchFilter, req pagination.Request) (*pagination.Result[models.Church], error) {
	req = req.With(
		pagination.Eq("city", filter.City),
		pagination.Eq("country", filter.Country),
		pagination.Eq("isActive", filter.IsActive),
	)

	result, err := pagination.NewResolver(s.repo.Store(filter.Search)).Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range result.Data {
		result.Data[i].LogoURL = s.media.url(ctx, result.Data[i].LogoKey)
	}
	return result, nil
}

// GetChurch retrieves a church by ID (with caching).
func (s *ChurchService) GetChurch(ctx context.Context, id string) (*models.Church, error) {
	oid, err := objectID(id, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}

	var church *models.Church
	if s.cache != nil {
		var cached models.Church
		found, err := s.cache.Get(ctx, cache.ChurchCacheKey(id), &cached)
		if err == nil && found {
			church = &cached
		}
	}

	if church == nil {
		church, err = s.repo.FindByID(ctx, oid)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			_ = s.cache.Set(ctx, cache.ChurchCacheKey(id), church, churchCacheTTL)
		}
	}

	church.LogoURL = s.media.url(ctx, church.LogoKey)
	return church, nil
}

// CreateChurch creates an active church.
func (s *ChurchService) CreateChurch(ctx context.Context, req *models.CreateChurchRequest) (*models.Church, error) {
	church := &models.Church{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, church); err != nil {
		return nil, err
	}
	return church, nil
}

// UpdateChurch applies the non-nil fields of req.
func (s *ChurchService) UpdateChurch(ctx context.Context, id string, req *models.UpdateChurchRequest) (*models.Church, error) {
	oid, err := objectID(id, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}

	church, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	oldLogo := church.LogoKey

	if req.Name != nil {
		church.Name = *req.Name
	}
	if req.Slug != nil {
		church.Slug = *req.Slug
	}
	if req.Description != nil {
		church.Description = *req.Description
	}
	if req.Address != nil {
		church.Address = *req.Address
	}
	if req.City != nil {
		church.City = *req.City
	}
	if req.Country != nil {
		church.Country = *req.Country
	}
	if req.Phone != nil {
		church.Phone = *req.Phone
	}
	if req.Email != nil {
		church.Email = *req.Email
	}
	if req.Website != nil {
		church.Website = *req.Website
	}
	if req.LogoKey != nil {
		church.LogoKey = *req.LogoKey
	}
	if req.IsActive != nil {
		church.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, church); err != nil {
		return nil, err
	}
	s.evict(ctx, id)
	s.media.replace(ctx, oldLogo, church.LogoKey)

	church.LogoURL = s.media.url(ctx, church.LogoKey)
	return church, nil
}

// DeleteChurch soft-deletes a church.
func (s *ChurchService) DeleteChurch(ctx context.Context, id string) error {
	oid, err := objectID(id, apperrors.ErrChurchNotFound)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, oid); err != nil {
		return err
	}
	s.evict(ctx, id)
	return nil
}

// UpdateStats writes recounted stats and evicts the cached church. It lets
// the stats processor write through the service.
func (s *ChurchService) UpdateStats(ctx context.Context, id primitive.ObjectID, stats models.ChurchStats) error {
	if err := s.repo.UpdateStats(ctx, id, stats); err != nil {
		return err
	}
	s.evict(ctx, id.Hex())
	return nil
}

func (s *ChurchService) evict(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.ChurchCacheKey(id)); err != nil {
		slog.WarnContext(ctx, "evict cached church", "church_id", id, "error", err)
	}
}
