package repository

import (
	"context"
	"testing"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	tdb.EnsureIndexes(t)
	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	user := &models.User{Email: "maria@example.com", Name: "Maria", Password: "hash"}

	t.Run("create defaults the system role", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))

		assert.False(t, user.ID.IsZero())
		assert.Equal(t, authz.SystemRoleUser, user.SystemRole)
		assert.NotNil(t, user.Permissions)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Email: "maria@example.com", Name: "Other"})
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})

	t.Run("update profile", func(t *testing.T) {
		name := "Maria Lopez"
		updated, err := repo.Update(ctx, user.ID, &models.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Maria Lopez", updated.Name)
		assert.Equal(t, "maria@example.com", updated.Email)
	})

	t.Run("update access feeds the access profile", func(t *testing.T) {
		_, err := repo.UpdateAccess(ctx, user.ID, authz.SystemRoleAdmin, []authz.Permission{authz.PermDeleteAll})
		require.NoError(t, err)

		profile, err := repo.AccessProfile(ctx, user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, authz.SystemRoleAdmin, profile.SystemRole)
		assert.Equal(t, []authz.Permission{authz.PermDeleteAll}, profile.Permissions)
	})

	t.Run("access profile of unknown or malformed id", func(t *testing.T) {
		_, err := repo.AccessProfile(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

		_, err = repo.AccessProfile(ctx, "nope")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("soft delete hides the user", func(t *testing.T) {
		require.NoError(t, repo.SoftDelete(ctx, user.ID))

		_, err := repo.FindByEmail(ctx, "maria@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
