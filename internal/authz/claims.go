// Package authz provides the request authorization gate: caller claims, pure
// predicates over them, and require* checks that report a distinct error kind.
package authz

import (
	"encoding/json"
	"sort"
)

// SystemRole is the caller's platform-wide role.
type SystemRole string

// System roles.
const (
	SystemRoleAdmin SystemRole = "system_admin"
	SystemRoleUser  SystemRole = "user"
)

// Valid reports whether r is a known system role.
func (r SystemRole) Valid() bool {
	return r == SystemRoleAdmin || r == SystemRoleUser
}

// ChurchRole is a caller's role inside a single church. Roles are not ordered;
// checks only ever test membership in an allow-list.
type ChurchRole string

// Church roles.
const (
	RoleAdmin   ChurchRole = "admin"
	RolePastor  ChurchRole = "pastor"
	RoleLeader  ChurchRole = "leader"
	RoleStaff   ChurchRole = "staff"
	RoleMember  ChurchRole = "member"
	RoleVisitor ChurchRole = "visitor"
)

// AllChurchRoles lists every known church role.
var AllChurchRoles = []ChurchRole{RoleAdmin, RolePastor, RoleLeader, RoleStaff, RoleMember, RoleVisitor}

// Valid reports whether r is a known church role.
func (r ChurchRole) Valid() bool {
	for _, known := range AllChurchRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Commonly used allow-lists.
var (
	EditorRoles    = []ChurchRole{RoleAdmin, RolePastor, RoleLeader, RoleStaff}
	PastoralRoles  = []ChurchRole{RoleAdmin, RolePastor}
	MemberManagers = []ChurchRole{RoleAdmin, RolePastor, RoleLeader}
)

// ChurchRoles maps a church id to the caller's role in that church.
type ChurchRoles map[string]ChurchRole

// Lookup returns the role held in churchID and whether an entry exists.
func (r ChurchRoles) Lookup(churchID string) (ChurchRole, bool) {
	if r == nil {
		return "", false
	}
	role, ok := r[churchID]
	return role, ok
}

// Permission is an opaque capability token such as "delete:all".
type Permission string

// Known permissions.
const (
	PermDeleteAll     Permission = "delete:all"
	PermReadPublic    Permission = "read:public"
	PermReadQuestions Permission = "read:questions"
	PermManageUsers   Permission = "manage:users"
)

// KnownPermissions lists every permission the API checks.
var KnownPermissions = []Permission{PermDeleteAll, PermReadPublic, PermReadQuestions, PermManageUsers}

// Valid reports whether p is a known permission.
func (p Permission) Valid() bool {
	for _, known := range KnownPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from the given permissions.
func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is in the set.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Slice returns the permissions in sorted order.
func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON decodes an array into the set.
func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var perms []Permission
	if err := json.Unmarshal(data, &perms); err != nil {
		return err
	}
	*s = NewPermissionSet(perms...)
	return nil
}

// Claims is the authenticated caller's role and permission snapshot for one request.
type Claims struct {
	UID         string        `json:"uid"`
	SystemRole  SystemRole    `json:"systemRole"`
	ChurchRoles ChurchRoles   `json:"churchRoles"`
	Permissions PermissionSet `json:"permissions"`
}
