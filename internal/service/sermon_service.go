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

// SermonService handles business logic for sermons.
type SermonService struct {
	repo  repository.SermonRepository
	stats StatsEnqueuer
	media media
}

// NewSermonService creates a new SermonService. stats and store may be nil.
func NewSermonService(repo repository.SermonRepository, stats StatsEnqueuer, store storage.Storage) *SermonService {
	return &SermonService{
		repo:  repo,
		stats: stats,
		media: media{store: store},
	}
}

// ListSermons returns one page of sermons, newest preaching date first
// unless the request orders otherwise.
func (s *SermonService) ListSermons(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Sermon], error) {
	churchID, err := filterID("churchId", filter.ChurchID)
	if err != nil {
		return nil, err
	}
	req = req.With(
		pagination.Eq("churchId", churchID),
		pagination.Eq("preacher", filter.Preacher),
		pagination.Eq("series", filter.Series),
	)
	if filter.ChurchID == "" || !canEdit(claims, filter.ChurchID) {
		req = req.With(pagination.Eq("published", true))
	}
	if len(req.OrderBy) == 0 {
		req.OrderBy = []pagination.Order{{Field: "date", Direction: pagination.Desc}}
	}

	result, err := pagination.NewResolver(s.repo.Store()).Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	for i := range result.Data {
		result.Data[i].MediaURL = s.media.url(ctx, result.Data[i].MediaKey)
	}
	return result, nil
}

// GetSermon retrieves a sermon. Drafts look missing to non-editors.
func (s *SermonService) GetSermon(ctx context.Context, claims *authz.Claims, id string) (*models.Sermon, error) {
	oid, err := objectID(id, apperrors.ErrSermonNotFound)
	if err != nil {
		return nil, err
	}

	sermon, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !sermon.Published && !canEdit(claims, sermon.ChurchID.Hex()) {
		return nil, apperrors.ErrSermonNotFound
	}

	sermon.MediaURL = s.media.url(ctx, sermon.MediaKey)
	return sermon, nil
}

// CreateSermon creates a sermon in req.ChurchID on behalf of the caller.
func (s *SermonService) CreateSermon(ctx context.Context, claims *authz.Claims, req *models.CreateSermonRequest) (*models.Sermon, error) {
	churchID, err := objectID(req.ChurchID, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}
	createdBy, err := objectID(claims.UID, apperrors.ErrNotAuthenticated)
	if err != nil {
		return nil, err
	}

	sermon := &models.Sermon{
		ChurchID:  churchID,
		Title:     req.Title,
		Preacher:  req.Preacher,
		Scripture: req.Scripture,
		Series:    req.Series,
		Summary:   req.Summary,
		Date:      req.Date,
		MediaKey:  req.MediaKey,
		Published: req.Published,
		CreatedBy: createdBy,
	}
	if err := s.repo.Create(ctx, sermon); err != nil {
		return nil, err
	}

	if sermon.Published {
		enqueueRecount(s.stats, churchID)
	}
	return sermon, nil
}

// UpdateSermon applies the non-nil fields of req to a sermon of churchID.
func (s *SermonService) UpdateSermon(ctx context.Context, churchID, id string, req *models.UpdateSermonRequest) (*models.Sermon, error) {
	oid, err := objectID(id, apperrors.ErrSermonNotFound)
	if err != nil {
		return nil, err
	}

	sermon, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := sameChurch(churchID, sermon.ChurchID); err != nil {
		return nil, err
	}
	oldMedia, wasPublished := sermon.MediaKey, sermon.Published

	if req.Title != nil {
		sermon.Title = *req.Title
	}
	if req.Preacher != nil {
		sermon.Preacher = *req.Preacher
	}
	if req.Scripture != nil {
		sermon.Scripture = *req.Scripture
	}
	if req.Series != nil {
		sermon.Series = *req.Series
	}
	if req.Summary != nil {
		sermon.Summary = *req.Summary
	}
	if req.Date != nil {
		sermon.Date = *req.Date
	}
	if req.MediaKey != nil {
		sermon.MediaKey = *req.MediaKey
	}
	if req.Published != nil {
		sermon.Published = *req.Published
	}

	if err := s.repo.Update(ctx, sermon); err != nil {
		return nil, err
	}
	s.media.replace(ctx, oldMedia, sermon.MediaKey)
	if wasPublished != sermon.Published {
		enqueueRecount(s.stats, sermon.ChurchID)
	}

	sermon.MediaURL = s.media.url(ctx, sermon.MediaKey)
	return sermon, nil
}

// DeleteSermon soft-deletes a sermon of churchID.
func (s *SermonService) DeleteSermon(ctx context.Context, churchID, id string) error {
	oid, err := objectID(id, apperrors.ErrSermonNotFound)
	if err != nil {
		return err
	}

	sermon, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if err := sameChurch(churchID, sermon.ChurchID); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, oid); err != nil {
		return err
	}
	if sermon.Published {
		enqueueRecount(s.stats, sermon.ChurchID)
	}
	return nil
}
