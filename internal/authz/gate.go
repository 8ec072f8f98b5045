package authz

import (
	"errors"

	apperrors "ceslar/internal/errors"
)

// ChurchIDKey is the identifier name church-scoped gates look up.
const ChurchIDKey = "churchId"

// IsSystemAdmin reports whether the caller holds the system admin role.
func IsSystemAdmin(c *Claims) bool {
	return c != nil && c.SystemRole == SystemRoleAdmin
}

// IsChurchAdmin reports whether the caller is an admin of churchID.
func IsChurchAdmin(c *Claims, churchID string) bool {
	if c == nil {
		return false
	}
	role, ok := c.ChurchRoles.Lookup(churchID)
	return ok && role == RoleAdmin
}

// HasChurchRole reports whether the caller's role in churchID is one of allowed.
// An empty allow-list never matches.
func HasChurchRole(c *Claims, churchID string, allowed []ChurchRole) bool {
	if c == nil {
		return false
	}
	role, ok := c.ChurchRoles.Lookup(churchID)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// HasPermission reports whether the caller holds p.
func HasPermission(c *Claims, p Permission) bool {
	return c != nil && c.Permissions.Has(p)
}

// RequireSystemAdmin fails unless the caller is a system admin.
func RequireSystemAdmin(c *Claims) error {
	if c == nil {
		return apperrors.ErrNotAuthenticated
	}
	if IsSystemAdmin(c) {
		return nil
	}
	return &apperrors.PermissionError{Requirement: "system admin"}
}

// RequireChurchAdmin fails unless the caller administers the church named by
// the request. It returns the resolved church id, which may be empty for a
// system admin on a request that carries none.
func RequireChurchAdmin(c *Claims, req Request) (string, error) {
	return RequireChurchRole(c, req, []ChurchRole{RoleAdmin})
}

// RequireChurchRole fails unless the caller holds one of allowed in the church
// named by the request.
func RequireChurchRole(c *Claims, req Request, allowed []ChurchRole) (string, error) {
	if c == nil {
		return "", apperrors.ErrNotAuthenticated
	}

	sources := req.ChurchIDSources()
	churchID, _, found := Resolve(ChurchIDKey, sources)
	if IsSystemAdmin(c) {
		return churchID, nil
	}
	if !found {
		return "", &apperrors.MissingIdentifierError{Name: ChurchIDKey, Sources: sourceNames(sources)}
	}

	if HasChurchRole(c, churchID, allowed) {
		return churchID, nil
	}
	return "", &apperrors.PermissionError{Requirement: "church role", Allowed: roleNames(allowed)}
}

// RequirePermission fails unless the caller holds p.
func RequirePermission(c *Claims, p Permission) error {
	return RequireAnyPermission(c, p)
}

// RequireAnyPermission fails unless the caller holds at least one of perms.
func RequireAnyPermission(c *Claims, perms ...Permission) error {
	if c == nil {
		return apperrors.ErrNotAuthenticated
	}
	if IsSystemAdmin(c) {
		return nil
	}
	for _, p := range perms {
		if c.Permissions.Has(p) {
			return nil
		}
	}
	return &apperrors.PermissionError{Requirement: "permission", Allowed: permissionNames(perms)}
}

// RequireOwnerOrAdmin fails unless the caller's uid equals ownerField, read
// from the path and then the body. System admins always pass.
func RequireOwnerOrAdmin(c *Claims, req Request, ownerField string) error {
	if c == nil {
		return apperrors.ErrNotAuthenticated
	}
	if IsSystemAdmin(c) {
		return nil
	}

	sources := req.OwnerSources()
	owner, _, found := Resolve(ownerField, sources)
	if !found {
		return &apperrors.MissingIdentifierError{Name: ownerField, Sources: sourceNames(sources)}
	}
	if owner == c.UID {
		return nil
	}
	return &apperrors.PermissionError{Requirement: "owner of " + ownerField}
}

// Check is a gate bound to its parameters.
type Check func(c *Claims, req Request) error

// SystemAdmin binds RequireSystemAdmin.
func SystemAdmin() Check {
	return func(c *Claims, _ Request) error { return RequireSystemAdmin(c) }
}

// ChurchAdmin binds RequireChurchAdmin.
func ChurchAdmin() Check {
	return func(c *Claims, req Request) error {
		_, err := RequireChurchAdmin(c, req)
		return err
	}
}

// ChurchRoleIn binds RequireChurchRole.
func ChurchRoleIn(allowed ...ChurchRole) Check {
	return func(c *Claims, req Request) error {
		_, err := RequireChurchRole(c, req, allowed)
		return err
	}
}

// HasAnyPermission binds RequireAnyPermission.
func HasAnyPermission(perms ...Permission) Check {
	return func(c *Claims, _ Request) error { return RequireAnyPermission(c, perms...) }
}

// OwnerOrAdmin binds RequireOwnerOrAdmin.
func OwnerOrAdmin(ownerField string) Check {
	return func(c *Claims, req Request) error { return RequireOwnerOrAdmin(c, req, ownerField) }
}

// AnyOf passes when at least one check passes. When all fail, an
// authentication failure wins, then a permission failure, then the first error.
func AnyOf(checks ...Check) Check {
	return func(c *Claims, req Request) error {
		if c == nil {
			return apperrors.ErrNotAuthenticated
		}
		var first, denied error
		for _, check := range checks {
			err := check(c, req)
			if err == nil {
				return nil
			}
			if first == nil {
				first = err
			}
			if denied == nil && errors.Is(err, apperrors.ErrInsufficientPermission) {
				denied = err
			}
		}
		if denied != nil {
			return denied
		}
		if first == nil {
			return &apperrors.PermissionError{Requirement: "any of zero checks"}
		}
		return first
	}
}

func roleNames(roles []ChurchRole) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

func permissionNames(perms []Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
