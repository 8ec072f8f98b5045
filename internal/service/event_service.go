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

// EventService handles business logic for church events.
type EventService struct {
	repo  repository.EventRepository
	stats StatsEnqueuer
	media media
}

// NewEventService creates a new EventService. stats and store may be nil.
func NewEventService(repo repository.EventRepository, stats StatsEnqueuer, store storage.Storage) *EventService {
	return &EventService{
		repo:  repo,
		stats: stats,
		media: media{store: store},
	}
}

// ListEvents returns one page of events. Only editors of the filtered church
// see unpublished events.
func (s *EventService) ListEvents(ctx context.Context, claims *authz.Claims, filter models.ContentFilter, req pagination.Request) (*pagination.Result[models.Event], error) {
	churchID, err := filterID("churchId", filter.ChurchID)
	if err != nil {
		return nil, err
	}
	req = req.With(
		pagination.Eq("churchId", churchID),
		pagination.Eq("category", filter.Category),
	)
	if filter.ChurchID == "" || !canEdit(claims, filter.ChurchID) {
		req = req.With(pagination.Eq("published", true))
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

// GetEvent retrieves an event. Drafts look missing to non-editors.
func (s *EventService) GetEvent(ctx context.Context, claims *authz.Claims, id string) (*models.Event, error) {
	oid, err := objectID(id, apperrors.ErrEventNotFound)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !event.Published && !canEdit(claims, event.ChurchID.Hex()) {
		return nil, apperrors.ErrEventNotFound
	}

	event.ImageURL = s.media.url(ctx, event.ImageKey)
	return event, nil
}

// CreateEvent creates an event in req.ChurchID on behalf of the caller.
func (s *EventService) CreateEvent(ctx context.Context, claims *authz.Claims, req *models.CreateEventRequest) (*models.Event, error) {
	churchID, err := objectID(req.ChurchID, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}
	createdBy, err := objectID(claims.UID, apperrors.ErrNotAuthenticated)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ChurchID:    churchID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		ImageKey:    req.ImageKey,
		Published:   req.Published,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	if event.Published {
		enqueueRecount(s.stats, churchID)
	}
	return event, nil
}

// UpdateEvent applies the non-nil fields of req to an event of churchID.
func (s *EventService) UpdateEvent(ctx context.Context, churchID, id string, req *models.UpdateEventRequest) (*models.Event, error) {
	oid, err := objectID(id, apperrors.ErrEventNotFound)
	if err != nil {
		return nil, err
	}

	event, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := sameChurch(churchID, event.ChurchID); err != nil {
		return nil, err
	}
	oldImage, wasPublished := event.ImageKey, event.Published

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.ImageKey != nil {
		event.ImageKey = *req.ImageKey
	}
	if req.Published != nil {
		event.Published = *req.Published
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}
	s.media.replace(ctx, oldImage, event.ImageKey)
	if wasPublished != event.Published {
		enqueueRecount(s.stats, event.ChurchID)
	}

	event.ImageURL = s.media.url(ctx, event.ImageKey)
	return event, nil
}

// DeleteEvent soft-deletes an event of churchID.
func (s *EventService) DeleteEvent(ctx context.Context, churchID, id string) error {
	oid, err := objectID(id, apperrors.ErrEventNotFound)
	if err != nil {
		return err
	}

	event, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return err
	}
	if err := sameChurch(churchID, event.ChurchID); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, oid); err != nil {
		return err
	}
	if event.Published {
		enqueueRecount(s.stats, event.ChurchID)
	}
	return nil
}
