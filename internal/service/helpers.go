package service

import (
	"context"
	"log/slog"
	"time"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const presignedURLExpiry = 1 * time.Hour

// objectID parses a hex id. A malformed id cannot name a document, so it is
// reported as notFound.
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

// filterID converts an optional id filter. Empty means no constraint.
func filterID(field, id string) (any, error) {
	if id == "" {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.QueryError("%s %q is not a valid id", field, id)
	}
	return oid, nil
}

// canEdit reports whether the caller may see unpublished content of churchID.
func canEdit(claims *authz.Claims, churchID string) bool {
	return authz.IsSystemAdmin(claims) || authz.HasChurchRole(claims, churchID, authz.EditorRoles)
}

// sameChurch fails when an item outside the authorized church is targeted.
// An empty authorized id means the gate passed without a church: a system
// admin or a holder of a global permission such as delete:all.
func sameChurch(authorized string, owner primitive.ObjectID) error {
	if authorized == "" || authorized == owner.Hex() {
		return nil
	}
	return apperrors.ErrChurchMismatch
}

// media presigns download URLs and removes replaced objects. A nil store
// disables both.
type media struct {
	store storage.Storage
}

func (m media) url(ctx context.Context, key string) string {
	if m.store == nil || key == "" {
		return ""
	}
	url, err := m.store.GetPresignedURL(ctx, key, presignedURLExpiry)
	if err != nil {
		slog.WarnContext(ctx, "presign media url", "key", key, "error", err)
		return ""
	}
	return url
}

// replace deletes old once a document points at a different key.
func (m media) replace(ctx context.Context, old, current string) {
	if m.store == nil || old == "" || old == current {
		return
	}
	if err := m.store.DeleteObject(ctx, old); err != nil {
		slog.WarnContext(ctx, "delete replaced media", "key", old, "error", err)
	}
}

func invalidateClaims(ctx context.Context, inv ClaimsInvalidator, uid string) {
	if inv == nil {
		return
	}
	if err := inv.Invalidate(ctx, uid); err != nil {
		slog.WarnContext(ctx, "invalidate claims cache", "uid", uid, "error", err)
	}
}

func enqueueRecount(stats StatsEnqueuer, churchID primitive.ObjectID) {
	if stats != nil {
		stats.EnqueueRecount(churchID)
	}
}
