package authz

import (
	"testing"

	apperrors "ceslar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const churchA = "church-a"

func pathReq(churchID string) Request {
	return Request{Path: MapLookup(map[string]string{ChurchIDKey: churchID})}
}

func memberOf(role ChurchRole) *Claims {
	return &Claims{
		UID:         "user-1",
		SystemRole:  SystemRoleUser,
		ChurchRoles: ChurchRoles{churchA: role},
		Permissions: NewPermissionSet(),
	}
}

func systemAdmin() *Claims {
	return &Claims{UID: "root", SystemRole: SystemRoleAdmin}
}

func TestIsSystemAdmin(t *testing.T) {
	assert.True(t, IsSystemAdmin(systemAdmin()))
	assert.False(t, IsSystemAdmin(memberOf(RoleAdmin)))
	assert.False(t, IsSystemAdmin(nil))
}

func TestIsChurchAdmin(t *testing.T) {
	t.Run("admin passes", func(t *testing.T) {
		assert.True(t, IsChurchAdmin(memberOf(RoleAdmin), churchA))
	})

	for _, role := range []ChurchRole{RolePastor, RoleLeader, RoleStaff, RoleMember, RoleVisitor, "ADMIN", ""} {
		t.Run("fails for "+string(role), func(t *testing.T) {
			assert.False(t, IsChurchAdmin(memberOf(role), churchA))
		})
	}

	t.Run("fails for missing entry", func(t *testing.T) {
		assert.False(t, IsChurchAdmin(memberOf(RoleAdmin), "other-church"))
	})

	t.Run("fails for nil role map", func(t *testing.T) {
		assert.False(t, IsChurchAdmin(&Claims{UID: "u"}, churchA))
	})
}

func TestHasChurchRole(t *testing.T) {
	tests := []struct {
		name     string
		role     ChurchRole
		allowed  []ChurchRole
		expected bool
	}{
		{"role in list", RolePastor, PastoralRoles, true},
		{"role not in list", RoleMember, PastoralRoles, false},
		{"editor roles include staff", RoleStaff, EditorRoles, true},
		{"editor roles exclude visitor", RoleVisitor, EditorRoles, false},
		{"empty list never matches", RoleAdmin, nil, false},
		{"empty slice never matches", RoleAdmin, []ChurchRole{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasChurchRole(memberOf(tt.role), churchA, tt.allowed))
		})
	}

	t.Run("missing entry never matches even if empty role allowed", func(t *testing.T) {
		assert.False(t, HasChurchRole(memberOf(RoleAdmin), "elsewhere", []ChurchRole{""}))
	})
}

func TestHasPermission(t *testing.T) {
	c := &Claims{UID: "u", Permissions: NewPermissionSet(PermDeleteAll)}

	assert.True(t, HasPermission(c, PermDeleteAll))
	assert.False(t, HasPermission(c, PermReadQuestions))
	assert.False(t, HasPermission(&Claims{UID: "u"}, PermDeleteAll))
	assert.False(t, HasPermission(nil, PermDeleteAll))
}

func TestSystemAdminPassesEveryGate(t *testing.T) {
	admin := systemAdmin()
	req := pathReq(churchA)

	_, err := RequireChurchAdmin(admin, req)
	assert.NoError(t, err)

	_, err = RequireChurchRole(admin, req, []ChurchRole{RolePastor})
	assert.NoError(t, err)

	_, err = RequireChurchRole(admin, req, nil)
	assert.NoError(t, err)

	assert.NoError(t, RequirePermission(admin, PermDeleteAll))
	assert.NoError(t, RequireAnyPermission(admin, PermReadQuestions, PermManageUsers))
	assert.NoError(t, RequireSystemAdmin(admin))
	assert.NoError(t, RequireOwnerOrAdmin(admin, Request{Path: MapLookup(map[string]string{"userId": "someone"})}, "userId"))

	t.Run("without a church id", func(t *testing.T) {
		churchID, err := RequireChurchAdmin(admin, Request{})
		assert.NoError(t, err)
		assert.Empty(t, churchID)
	})
}

func TestRequireSystemAdmin(t *testing.T) {
	assert.ErrorIs(t, RequireSystemAdmin(nil), apperrors.ErrNotAuthenticated)
	assert.ErrorIs(t, RequireSystemAdmin(memberOf(RoleAdmin)), apperrors.ErrInsufficientPermission)
}

func TestRequireChurchAdmin(t *testing.T) {
	t.Run("church admin passes and returns id", func(t *testing.T) {
		churchID, err := RequireChurchAdmin(memberOf(RoleAdmin), pathReq(churchA))

		require.NoError(t, err)
		assert.Equal(t, churchA, churchID)
	})

	t.Run("pastor is denied", func(t *testing.T) {
		_, err := RequireChurchAdmin(memberOf(RolePastor), pathReq(churchA))

		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
		assert.Contains(t, err.Error(), "admin")
	})

	t.Run("missing church id is a distinct failure", func(t *testing.T) {
		_, err := RequireChurchAdmin(memberOf(RoleAdmin), Request{})

		assert.ErrorIs(t, err, apperrors.ErrMissingResourceIdentifier)
		assert.NotErrorIs(t, err, apperrors.ErrInsufficientPermission)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := RequireChurchAdmin(nil, pathReq(churchA))

		assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	})
}

func TestRequireChurchRole(t *testing.T) {
	t.Run("error names the roles that would have sufficed", func(t *testing.T) {
		_, err := RequireChurchRole(memberOf(RoleMember), pathReq(churchA), PastoralRoles)

		require.Error(t, err)
		var perr *apperrors.PermissionError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, []string{"admin", "pastor"}, perr.Allowed)
	})

	t.Run("path wins over body and query", func(t *testing.T) {
		c := &Claims{UID: "u", ChurchRoles: ChurchRoles{"from-path": RoleAdmin, "from-body": RoleVisitor}}
		req := Request{
			Path:  MapLookup(map[string]string{ChurchIDKey: "from-path"}),
			Body:  MapLookup(map[string]string{ChurchIDKey: "from-body"}),
			Query: MapLookup(map[string]string{ChurchIDKey: "from-query"}),
		}

		churchID, err := RequireChurchRole(c, req, []ChurchRole{RoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, "from-path", churchID)
	})

	t.Run("conflicting body value does not grant access", func(t *testing.T) {
		c := &Claims{UID: "u", ChurchRoles: ChurchRoles{"from-body": RoleAdmin}}
		req := Request{
			Path: MapLookup(map[string]string{ChurchIDKey: "from-path"}),
			Body: MapLookup(map[string]string{ChurchIDKey: "from-body"}),
		}

		_, err := RequireChurchRole(c, req, []ChurchRole{RoleAdmin})

		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
	})

	t.Run("falls back to body then query", func(t *testing.T) {
		c := memberOf(RoleLeader)

		churchID, err := RequireChurchRole(c, Request{
			Path: MapLookup(map[string]string{}),
			Body: MapLookup(map[string]string{ChurchIDKey: churchA}),
		}, EditorRoles)
		require.NoError(t, err)
		assert.Equal(t, churchA, churchID)

		churchID, err = RequireChurchRole(c, Request{
			Query: MapLookup(map[string]string{ChurchIDKey: churchA}),
		}, EditorRoles)
		require.NoError(t, err)
		assert.Equal(t, churchA, churchID)
	})

	t.Run("empty path value falls through to body", func(t *testing.T) {
		churchID, err := RequireChurchRole(memberOf(RoleStaff), Request{
			Path: MapLookup(map[string]string{ChurchIDKey: ""}),
			Body: MapLookup(map[string]string{ChurchIDKey: churchA}),
		}, EditorRoles)

		require.NoError(t, err)
		assert.Equal(t, churchA, churchID)
	})

	t.Run("zero is a real church id", func(t *testing.T) {
		c := &Claims{UID: "u", ChurchRoles: ChurchRoles{"0": RoleAdmin}}

		churchID, err := RequireChurchAdmin(c, pathReq("0"))

		require.NoError(t, err)
		assert.Equal(t, "0", churchID)
	})
}

func TestRequirePermission(t *testing.T) {
	c := &Claims{UID: "u", Permissions: NewPermissionSet(PermReadQuestions)}

	assert.NoError(t, RequirePermission(c, PermReadQuestions))
	assert.ErrorIs(t, RequirePermission(c, PermDeleteAll), apperrors.ErrInsufficientPermission)
	assert.ErrorIs(t, RequirePermission(nil, PermDeleteAll), apperrors.ErrNotAuthenticated)
}

func TestRequireAnyPermission(t *testing.T) {
	c := &Claims{UID: "u", Permissions: NewPermissionSet(PermReadQuestions)}

	assert.NoError(t, RequireAnyPermission(c, PermDeleteAll, PermReadQuestions))

	err := RequireAnyPermission(c, PermDeleteAll, PermManageUsers)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
	assert.Contains(t, err.Error(), "delete:all")

	assert.Error(t, RequireAnyPermission(c))
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	owner := &Claims{UID: "user-1", SystemRole: SystemRoleUser}

	t.Run("owner in path passes regardless of role", func(t *testing.T) {
		req := Request{Path: MapLookup(map[string]string{"userId": "user-1"})}
		assert.NoError(t, RequireOwnerOrAdmin(owner, req, "userId"))
	})

	t.Run("owner in body passes", func(t *testing.T) {
		req := Request{Body: MapLookup(map[string]string{"userId": "user-1"})}
		assert.NoError(t, RequireOwnerOrAdmin(owner, req, "userId"))
	})

	t.Run("path takes precedence over body", func(t *testing.T) {
		req := Request{
			Path: MapLookup(map[string]string{"userId": "user-2"}),
			Body: MapLookup(map[string]string{"userId": "user-1"}),
		}
		assert.ErrorIs(t, RequireOwnerOrAdmin(owner, req, "userId"), apperrors.ErrInsufficientPermission)
	})

	t.Run("query is not an owner source", func(t *testing.T) {
		req := Request{Query: MapLookup(map[string]string{"userId": "user-1"})}
		assert.ErrorIs(t, RequireOwnerOrAdmin(owner, req, "userId"), apperrors.ErrMissingResourceIdentifier)
	})

	t.Run("church admin is not an owner", func(t *testing.T) {
		req := Request{Path: MapLookup(map[string]string{"userId": "user-2"})}
		assert.ErrorIs(t, RequireOwnerOrAdmin(memberOf(RoleAdmin), req, "userId"), apperrors.ErrInsufficientPermission)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		assert.ErrorIs(t, RequireOwnerOrAdmin(nil, Request{}, "userId"), apperrors.ErrNotAuthenticated)
	})
}

func TestAnyOf(t *testing.T) {
	check := AnyOf(ChurchRoleIn(PastoralRoles...), HasAnyPermission(PermDeleteAll))
	req := pathReq(churchA)

	t.Run("first check passes", func(t *testing.T) {
		assert.NoError(t, check(memberOf(RolePastor), req))
	})

	t.Run("second check passes", func(t *testing.T) {
		c := memberOf(RoleMember)
		c.Permissions = NewPermissionSet(PermDeleteAll)
		assert.NoError(t, check(c, req))
	})

	t.Run("permission failure preferred over missing id", func(t *testing.T) {
		err := check(memberOf(RoleMember), Request{})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		assert.ErrorIs(t, check(nil, req), apperrors.ErrNotAuthenticated)
	})

	t.Run("no checks denies", func(t *testing.T) {
		assert.ErrorIs(t, AnyOf()(memberOf(RoleAdmin), req), apperrors.ErrInsufficientPermission)
	})
}

func TestBoundChecks(t *testing.T) {
	req := pathReq(churchA)

	assert.NoError(t, SystemAdmin()(systemAdmin(), req))
	assert.Error(t, SystemAdmin()(memberOf(RoleAdmin), req))
	assert.NoError(t, ChurchAdmin()(memberOf(RoleAdmin), req))
	assert.Error(t, ChurchAdmin()(memberOf(RoleStaff), req))
	assert.NoError(t, OwnerOrAdmin(ChurchIDKey)(&Claims{UID: churchA}, req))
}
