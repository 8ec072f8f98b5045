package models

import (
	"time"

	"ceslar/internal/authz"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipStatus is the lifecycle state of a membership.
type MembershipStatus string

const (
	// MembershipPending is a join request awaiting a church admin.
	MembershipPending MembershipStatus = "pending"
	// MembershipActive grants the membership's role.
	MembershipActive MembershipStatus = "active"
	// MembershipInactive keeps history without granting a role.
	MembershipInactive MembershipStatus = "inactive"
)

// Valid reports whether s is a known status.
func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipActive, MembershipInactive:
		return true
	}
	return false
}

// Membership links a user to a church with a role. Only active memberships
// contribute to the caller's church roles.
type Membership struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ChurchID  primitive.ObjectID `json:"churchId" bson:"churchId" example:"507f1f77bcf86cd799439012"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439013"`
	Role      authz.ChurchRole   `json:"role" bson:"role" example:"member"`
	Status    MembershipStatus   `json:"status" bson:"status" example:"active"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// DocumentID implements pagination.Document.
func (m Membership) DocumentID() string { return m.ID.Hex() }

// JoinChurchRequest asks for userId to join the church in the path.
type JoinChurchRequest struct {
	UserID string           `json:"userId" binding:"required,mongodb" example:"507f1f77bcf86cd799439013"`
	Role   authz.ChurchRole `json:"role" binding:"omitempty,church_role" example:"member"`
}

// UpdateMembershipRequest changes a member's role or status.
type UpdateMembershipRequest struct {
	Role   *authz.ChurchRole `json:"role" binding:"omitempty,church_role" example:"leader"`
	Status *MembershipStatus `json:"status" binding:"omitempty,oneof=pending active inactive" example:"active"`
}

// MembershipFilter holds the optional list filters for members.
type MembershipFilter struct {
	Role   string `form:"role" example:"leader"`
	Status string `form:"status" example:"active"`
}
