// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Request-boundary error kinds. Every gate and pagination failure wraps one of these.
var (
	ErrNotAuthenticated          = errors.New("not authenticated")
	ErrMissingResourceIdentifier = errors.New("missing resource identifier")
	ErrInsufficientPermission    = errors.New("insufficient permission")
	ErrQueryConstruction         = errors.New("invalid query")
	ErrStoreUnavailable          = errors.New("document store unavailable")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Church errors
var (
	ErrChurchNotFound  = errors.New("church not found")
	ErrChurchSlugTaken = errors.New("church slug is already taken")
)

// Content errors
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrSermonNotFound   = errors.New("sermon not found")
	ErrMinistryNotFound = errors.New("ministry not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrChurchMismatch   = errors.New("resource belongs to a different church")
)

// Membership errors
var (
	ErrMembershipNotFound = errors.New("membership not found")
	ErrAlreadyMember      = errors.New("user is already a member of this church")
	ErrInvalidRole        = errors.New("invalid church role")
)

// Upload errors
var (
	ErrInvalidUploadKind = errors.New("invalid upload kind")
)

// PermissionError reports which requirement a caller failed. It unwraps to
// ErrInsufficientPermission.
type PermissionError struct {
	Requirement string
	Allowed     []string
}

func (e *PermissionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s: requires %s", ErrInsufficientPermission, e.Requirement)
	}
	return fmt.Sprintf("%s: requires %s (one of: %s)", ErrInsufficientPermission, e.Requirement, strings.Join(e.Allowed, ", "))
}

func (e *PermissionError) Unwrap() error {
	return ErrInsufficientPermission
}

// MissingIdentifierError names the identifier a gate could not resolve and where it looked.
type MissingIdentifierError struct {
	Name    string
	Sources []string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s: %s not found in %s", ErrMissingResourceIdentifier, e.Name, strings.Join(e.Sources, ", "))
}

func (e *MissingIdentifierError) Unwrap() error {
	return ErrMissingResourceIdentifier
}

// QueryError wraps ErrQueryConstruction with the offending detail.
func QueryError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrQueryConstruction, fmt.Sprintf(format, args...))
}

// StoreError wraps a transient store failure as ErrStoreUnavailable, keeping the cause.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrQueryConstruction) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
