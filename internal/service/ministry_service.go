package service

import (
	"context"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/repository"
	"ceslar/internal/storage"
)

// MinistryService handles business logic for ministries. Inactive ministries
// play the role drafts play for events and sermons.
type MinistryService struct {
	repo  repository.MinistryRepository
	media media
}

// NewMinistryService creates a new MinistryService. store may be nil.
func NewMinistryService(repo repository.MinistryRepository, store storage.Storage) *MinistryService {
	return &MinistryService{
		repo:  repo,
		media: media{store: store},
	}
}

// ListMinistries returns one page of ministries, by name unless the request
// orders otherwise. Only editors of the filtered church see inactive ones.
func (s *MinistryService) ListMinistries(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Ministry], error) {
	churchID, err := filterID("churchId", filter.ChurchID)
	if err != nil {
		return nil, err
	}
	req = req.With(pagination.Eq("churchId", churchID))
	if filter.ChurchID != "" && canEdit(claims, filter.ChurchID) {
		req = req.With(pagination.Eq("isActive", filter.IsActive))
	} else {
		req = req.With(pagination.Eq("isActive", true))
	}
	if len(req.OrderBy) == 0 {
		req.OrderBy = []pagination.Order{{Field: "name", Direction: pagination.Asc}}
	}

	result, err := pagination.NewResolver(s.repo.Store()).Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range result.Data {
		result.Data[i].ImageURL = s.media.url(ctx, result.Data[i].ImageKey)
	}
	return result, nil
}

// GetMinistry retrieves a ministry. Inactive ones look missing to non-editors.
func (s *MinistryService) GetMinistry(ctx context.Context, claims *authz.Claims, id string) (*models.Ministry, error) {
	oid, err := objectID(id, apperrors.ErrMinistryNotFound)
	if err != nil {
		return nil, err
	}

	ministry, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !ministry.IsActive && !canEdit(claims, ministry.ChurchID.Hex()) {
		return nil, apperrors.ErrMinistryNotFound
	}

	ministry.ImageURL = s.media.url(ctx, ministry.ImageKey)
	return ministry, nil
}

// CreateMinistry creates a ministry in req.ChurchID, active unless req says otherwise.
func (s *MinistryService) CreateMinistry(ctx context.Context, claims *authz.Claims, req *models.CreateMinistryRequest) (*models.Ministry, error) {
	churchID, err := objectID(req.ChurchID, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}
	createdBy, err := objectID(claims.UID, apperrors.ErrNotAuthenticated)
	if err != nil {
		return nil, err
	}

	ministry := &models.Ministry{
		ChurchID:    churchID,
		Name:        req.Name,
		Description: req.Description,
		Leader:      req.Leader,
		Schedule:    req.Schedule,
		ImageKey:    req.ImageKey,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, ministry); err != nil {
		return nil, err
	}
	return ministry, nil
}

// UpdateMinistry applies the non-nil fields of req to a ministry of churchID.
func (s *MinistryService) UpdateMinistry(ctx context.Context, churchID, id string, req *models.UpdateMinistryRequest) (*models.Ministry, error) {
	oid, err := objectID(id, apperrors.ErrMinistryNotFound)
	if err != nil {
		return nil, err
	}

	ministry, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := sameChurch(churchID, ministry.ChurchID); err != nil {
		return nil, err
	}
	oldImage := ministry.ImageKey

	if req.Name != nil {
		ministry.Name = *req.Name
	}
	if req.Description != nil {
		ministry.Description = *req.Description
	}
	if req.Leader != nil {
		ministry.Leader = *req.Leader
	}
	if req.Schedule != nil {
		ministry.Schedule = *req.Schedule
	}
	if req.ImageKey != nil {
		ministry.ImageKey = *req.ImageKey
	}
	if req.IsActive != nil {
		ministry.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, ministry); err != nil {
		return nil, err
	}
	s.media.replace(ctx, oldImage, ministry.ImageKey)

	ministry.ImageURL = s.media.url(ctx, ministry.ImageKey)
	return ministry, nil
}

// DeleteMinistry soft-deletes a ministry of churchID.
func (s *MinistryService) DeleteMinistry(ctx context.Context, churchID, id string) error {
	oid, err := objectID(id, apperrors.ErrMinistryNotFound)
	if err != nil {
		return err
	}

	ministry, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if err := sameChurch(churchID, ministry.ChurchID); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, oid)
}
