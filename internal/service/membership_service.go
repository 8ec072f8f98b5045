package service

import (
	"context"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/pagination"
	"ceslar/internal/repository"
)

// MembershipService handles church memberships. Every write schedules a
// stats recount for the church and drops the member's cached claims.
type MembershipService struct {
	repo     repository.MembershipRepository
	churches repository.ChurchRepository
	users    repository.UserRepository
	claims   ClaimsInvalidator
	stats    StatsEnqueuer
}

// MembershipServiceConfig holds the dependencies of MembershipService.
type MembershipServiceConfig struct {
	Repo     repository.MembershipRepository
	Churches repository.ChurchRepository
	Users    repository.UserRepository
	Claims   ClaimsInvalidator
	Stats    StatsEnqueuer
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(cfg MembershipServiceConfig) *MembershipService {
	return &MembershipService{
		repo:     cfg.Repo,
		churches: cfg.Churches,
		users:    cfg.Users,
		claims:   cfg.Claims,
		stats:    cfg.Stats,
	}
}

// ListMembers returns one page of the memberships of churchID.
func (s *MembershipService) ListMembers(ctx context.Context, churchID string, filter models.MembershipFilter, req pagination.Request) (*pagination.Result[models.Membership], error) {
	oid, err := objectID(churchID, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}

	req = req.With(
		pagination.Eq("role", filter.Role),
		pagination.Eq("status", filter.Status),
	)
	return pagination.NewResolver(s.repo.Store(oid)).Resolve(ctx, req)
}

// Join creates a membership of req.UserID in churchID. Church admins add
// members directly with the requested role; anyone else files a pending
// request as a plain member.
func (s *MembershipService) Join(ctx context.Context, claims *authz.Claims, churchID string, req *models.JoinChurchRequest) (*models.Membership, error) {
	churchOID, err := objectID(churchID, apperrors.ErrChurchNotFound)
	if err != nil {
		return nil, err
	}
	userOID, err := objectID(req.UserID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	if _, err := s.churches.FindByID(ctx, churchOID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userOID); err != nil {
		return nil, err
	}

	membership := &models.Membership{
		ChurchID: churchOID,
		UserID:   userOID,
		Role:     authz.RoleMember,
		Status:   models.MembershipPending,
	}
	if authz.IsSystemAdmin(claims) || authz.IsChurchAdmin(claims, churchID) {
		membership.Status = models.MembershipActive
		if req.Role != "" {
			membership.Role = req.Role
		}
	}

	if err := s.repo.Create(ctx, membership); err != nil {
		return nil, err
	}
	s.afterWrite(ctx, membership)
	return membership, nil
}

// UpdateMember changes the role and/or status of userID in churchID.
func (s *MembershipService) UpdateMember(ctx context.Context, churchID, userID string, req *models.UpdateMembershipRequest) (*models.Membership, error) {
	churchOID, err := objectID(churchID, apperrors.ErrMembershipNotFound)
	if err != nil {
		return nil, err
	}
	userOID, err := objectID(userID, apperrors.ErrMembershipNotFound)
	if err != nil {
		return nil, err
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	membership, err := s.repo.Update(ctx, churchOID, userOID, req.Role, req.Status)
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, membership)
	return membership, nil
}

// RemoveMember deletes the membership of userID in churchID.
func (s *MembershipService) RemoveMember(ctx context.Context, churchID, userID string) error {
	churchOID, err := objectID(churchID, apperrors.ErrMembershipNotFound)
	if err != nil {
		return err
	}
	userOID, err := objectID(userID, apperrors.ErrMembershipNotFound)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, churchOID, userOID); err != nil {
		return err
	}
	s.afterWrite(ctx, &models.Membership{ChurchID: churchOID, UserID: userOID})
	return nil
}

func (s *MembershipService) afterWrite(ctx context.Context, m *models.Membership) {
	invalidateClaims(ctx, s.claims, m.UserID.Hex())
	enqueueRecount(s.stats, m.ChurchID)
}
