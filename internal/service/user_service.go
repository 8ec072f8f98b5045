package service

import (
	"context"

	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/repository"
)

// UserService handles business logic for user operations.
type UserService struct {
	repo   repository.UserRepository
	claims ClaimsInvalidator
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, claims ClaimsInvalidator) *UserService {
	return &UserService{
		repo:   repo,
		claims: claims,
	}
}

// ListUsers returns one page of live users.
func (s *UserService) ListUsers(ctx context.Context, req pagination.Request) (*pagination.Result[models.User], error) {
	return pagination.NewResolver(s.repo.Store()).Resolve(ctx, req)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// UpdateUser updates a user's profile.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	oid, err := objectID(id, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, oid, req)
}

// UpdateAccess sets a user's system role and permissions. The user's cached
// claims are dropped so the change applies to their next request.
func (s *UserService) UpdateAccess(ctx context.Context, id string, req *models.UpdateAccessRequest) (*models.User, error) {
	oid, err := objectID(id, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.UpdateAccess(ctx, oid, req.SystemRole, req.Permissions)
	if err != nil {
		return nil, err
	}

	invalidateClaims(ctx, s.claims, id)
	return user, nil
}

// DeleteUser soft-deletes a user. Their cached claims are dropped so the
// token they hold stops authenticating.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	oid, err := objectID(id, apperrors.ErrUserNotFound)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, oid); err != nil {
		return err
	}

	invalidateClaims(ctx, s.claims, id)
	return nil
}
