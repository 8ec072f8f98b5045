//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ceslar/internal/authz"
	"ceslar/internal/models"
	"ceslar/test/fixtures"
	"ceslar/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPassword is the password every helper-created account uses.
const DefaultPassword = fixtures.Password

// AuthHelper provides account helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// Register creates an account through the API. Registration signs the
// user in, so the response already carries a token.
func (ah *AuthHelper) Register(t *testing.T, name, email string) models.LoginResponse {
	t.Helper()

	w := testutil.Request(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", "", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: DefaultPassword,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	return testutil.Data[models.LoginResponse](t, w)
}

// Login returns a bearer token for email.
func (ah *AuthHelper) Login(t *testing.T, email string) string {
	t.Helper()

	w := testutil.Request(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", "", models.LoginRequest{
		Email:    email,
		Password: DefaultPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.Data[models.LoginResponse](t, w)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// CreateUser registers and logs in a plain user.
func (ah *AuthHelper) CreateUser(t *testing.T, name, email string) (models.User, string) {
	t.Helper()

	resp := ah.Register(t, name, email)
	return resp.User, resp.Token
}

// CreateSystemAdmin creates a user and promotes it in the store, since only
// an existing admin can grant the role through the API.
func (ah *AuthHelper) CreateSystemAdmin(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user, token := ah.CreateUser(t, "System Admin", email)
	ah.SetAccess(t, user.ID, authz.SystemRoleAdmin)
	return user, token
}

// SeedUser inserts a user built from b directly into the database. Seeded
// users log in with DefaultPassword.
func (ah *AuthHelper) SeedUser(t *testing.T, b *fixtures.UserBuilder) *models.User {
	t.Helper()

	user := b.BuildPtr()
	require.NoError(t, ah.server.UserRepo.Create(context.Background(), user), "failed to seed user")
	return user
}

// SetAccess overwrites the system role and permissions of a user directly in
// the store and drops the user's cached claims.
func (ah *AuthHelper) SetAccess(t *testing.T, userID primitive.ObjectID, role authz.SystemRole, perms ...authz.Permission) {
	t.Helper()
	ctx := context.Background()

	if perms == nil {
		perms = []authz.Permission{}
	}
	_, err := ah.server.UserRepo.UpdateAccess(ctx, userID, role, perms)
	require.NoError(t, err, "failed to set access")
	require.NoError(t, ah.server.ClaimsResolver.Invalidate(ctx, userID.Hex()))
}

// ChurchHelper seeds tenants and their members.
type ChurchHelper struct {
	server *TestServer
}

// NewChurchHelper creates a new church helper.
func NewChurchHelper(server *TestServer) *ChurchHelper {
	return &ChurchHelper{server: server}
}

// SeedChurch inserts an active church directly into the database.
func (ch *ChurchHelper) SeedChurch(t *testing.T, name, slug, city string) *models.Church {
	t.Helper()
	return ch.SeedChurchFrom(t, fixtures.NewChurch().WithName(name).WithSlug(slug).InCity(city))
}

// SeedChurchFrom inserts the church built by b.
func (ch *ChurchHelper) SeedChurchFrom(t *testing.T, b *fixtures.ChurchBuilder) *models.Church {
	t.Helper()

	church := b.BuildPtr()
	require.NoError(t, ch.server.ChurchRepo.Create(context.Background(), church), "failed to seed church")
	return church
}

// SeedMember inserts an active membership and drops the member's cached
// claims so the next request sees the new role.
func (ch *ChurchHelper) SeedMember(t *testing.T, churchID, userID primitive.ObjectID, role authz.ChurchRole) *models.Membership {
	t.Helper()
	ctx := context.Background()

	m := fixtures.NewMembership(churchID, userID).WithRole(role).BuildPtr()
	require.NoError(t, ch.server.MembershipRepo.Create(ctx, m), "failed to seed membership")
	require.NoError(t, ch.server.ClaimsResolver.Invalidate(ctx, userID.Hex()))
	return m
}

// SeedEvent inserts an event starting offset from now.
func (ch *ChurchHelper) SeedEvent(t *testing.T, churchID primitive.ObjectID, title string, published bool, offset time.Duration) *models.Event {
	t.Helper()

	b := fixtures.NewEvent(churchID).WithTitle(title).StartingIn(offset)
	if !published {
		b.Draft()
	}
	event := b.BuildPtr()
	require.NoError(t, ch.server.EventRepo.Create(context.Background(), event), "failed to seed event")
	return event
}

// SeedQuestion inserts the question built by b.
func (ch *ChurchHelper) SeedQuestion(t *testing.T, b *fixtures.QuestionBuilder) *models.Question {
	t.Helper()

	q := b.BuildPtr()
	require.NoError(t, ch.server.QuestionRepo.Create(context.Background(), q), "failed to seed question")
	return q
}

// WaitForStats polls the stored church until cond holds for its stats. Stats
// are recounted by background workers, so writes are not visible at once.
func (ch *ChurchHelper) WaitForStats(t *testing.T, churchID primitive.ObjectID, cond func(models.ChurchStats) bool) models.ChurchStats {
	t.Helper()

	var stats models.ChurchStats
	require.Eventually(t, func() bool {
		church, err := ch.server.ChurchRepo.FindByID(context.Background(), churchID)
		if err != nil {
			return false
		}
		stats = church.Stats
		return cond(stats)
	}, 5*time.Second, 50*time.Millisecond, "church stats never matched")
	return stats
}
