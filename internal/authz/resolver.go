package authz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ceslar/internal/cache"
	apperrors "ceslar/internal/errors"
)

// AccessProfile is the platform-level part of a user's claims.
type AccessProfile struct {
	SystemRole  SystemRole
	Permissions []Permission
}

// ProfileSource loads a user's platform role and permissions.
// It returns apperrors.ErrUserNotFound for unknown users.
type ProfileSource interface {
	AccessProfile(ctx context.Context, uid string) (*AccessProfile, error)
}

// RoleSource loads the church roles a user holds through active memberships.
type RoleSource interface {
	ChurchRolesForUser(ctx context.Context, uid string) (ChurchRoles, error)
}

// ClaimsResolver builds Claims for a verified uid, caching the snapshot.
type ClaimsResolver struct {
	profiles ProfileSource
	roles    RoleSource
	cache    cache.Cache
	ttl      time.Duration
}

// NewClaimsResolver creates a ClaimsResolver. A nil cache disables caching.
func NewClaimsResolver(profiles ProfileSource, roles RoleSource, c cache.Cache, ttl time.Duration) *ClaimsResolver {
	return &ClaimsResolver{
		profiles: profiles,
		roles:    roles,
		cache:    c,
		ttl:      ttl,
	}
}

// Resolve returns the claims for uid. A uid with no user record is not authenticated.
func (r *ClaimsResolver) Resolve(ctx context.Context, uid string) (*Claims, error) {
	key := cache.ClaimsCacheKey(uid)
	if r.cache != nil {
		var cached Claims
		found, err := r.cache.Get(ctx, key, &cached)
		if err == nil && found {
			return &cached, nil
		}
	}

	profile, err := r.profiles.AccessProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrNotAuthenticated
		}
		return nil, apperrors.StoreError(err)
	}

	roles, err := r.roles.ChurchRolesForUser(ctx, uid)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if roles == nil {
		roles = ChurchRoles{}
	}

	claims := &Claims{
		UID:         uid,
		SystemRole:  profile.SystemRole,
		ChurchRoles: roles,
		Permissions: NewPermissionSet(profile.Permissions...),
	}
	if !claims.SystemRole.Valid() {
		claims.SystemRole = SystemRoleUser
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, claims, r.ttl); err != nil {
			slog.WarnContext(ctx, "claims cache write failed", "uid", uid, "error", err)
		}
	}

	return claims, nil
}

// Invalidate drops the cached claims for uid so the next request re-reads them.
func (r *ClaimsResolver) Invalidate(ctx context.Context, uid string) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.Delete(ctx, cache.ClaimsCacheKey(uid))
}
