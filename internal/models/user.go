// Package models defines data structures for the application.
package models

import (
	"time"

	"ceslar/internal/authz"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account. SystemRole and Permissions feed the caller's claims.
type User struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Email       string             `json:"email" bson:"email" example:"maria@example.com"`
	Password    string             `json:"-" bson:"password"`
	Name        string             `json:"name" bson:"name" example:"Maria Lopez"`
	Phone       string             `json:"phone,omitempty" bson:"phone,omitempty" example:"+51 999 888 777"`
	SystemRole  authz.SystemRole   `json:"systemRole" bson:"systemRole" example:"user"`
	Permissions []authz.Permission `json:"permissions" bson:"permissions" example:"read:questions"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

// DocumentID implements pagination.Document.
func (u User) DocumentID() string { return u.ID.Hex() }

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Maria Lopez"`
	Phone    string `json:"phone" binding:"omitempty,max=30" example:"+51 999 888 777"`
}

// UpdateUserRequest is the payload for updating a user's profile.
type UpdateUserRequest struct {
	Email *string `json:"email" binding:"omitempty,email" example:"maria.lopez@example.com"`
	Name  *string `json:"name" binding:"omitempty,min=2,max=100" example:"Maria L."`
	Phone *string `json:"phone" binding:"omitempty,max=30" example:"+51 999 000 111"`
}

// UpdateAccessRequest sets a user's system role and permissions.
type UpdateAccessRequest struct {
	SystemRole  authz.SystemRole   `json:"systemRole" binding:"required,system_role" example:"user"`
	Permissions []authz.Permission `json:"permissions" binding:"max=10,dive,permission" example:"read:questions"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"maria@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse is the response after successful login or registration.
type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-15T10:30:00Z"`
	User      User      `json:"user"`
}

// MeResponse is the authenticated user together with the claims the gates see.
type MeResponse struct {
	User   User         `json:"user"`
	Claims authz.Claims `json:"claims"`
}
