package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrNotAuthenticated", ErrNotAuthenticated, "not authenticated"},
		{"ErrMissingResourceIdentifier", ErrMissingResourceIdentifier, "missing resource identifier"},
		{"ErrInsufficientPermission", ErrInsufficientPermission, "insufficient permission"},
		{"ErrQueryConstruction", ErrQueryConstruction, "invalid query"},
		{"ErrStoreUnavailable", ErrStoreUnavailable, "document store unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrChurchNotFound", ErrChurchNotFound, "church not found"},
		{"ErrChurchSlugTaken", ErrChurchSlugTaken, "church slug is already taken"},
		{"ErrMembershipNotFound", ErrMembershipNotFound, "membership not found"},
		{"ErrAlreadyMember", ErrAlreadyMember, "user is already a member of this church"},
		{"ErrChurchMismatch", ErrChurchMismatch, "resource belongs to a different church"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPermissionError(t *testing.T) {
	t.Run("names allowed roles", func(t *testing.T) {
		err := &PermissionError{Requirement: "church role", Allowed: []string{"admin", "pastor"}}

		assert.ErrorIs(t, err, ErrInsufficientPermission)
		assert.Equal(t, "insufficient permission: requires church role (one of: admin, pastor)", err.Error())
	})

	t.Run("without allowed list", func(t *testing.T) {
		err := &PermissionError{Requirement: "system admin"}

		assert.Equal(t, "insufficient permission: requires system admin", err.Error())
	})
}

func TestMissingIdentifierError(t *testing.T) {
	err := &MissingIdentifierError{Name: "churchId", Sources: []string{"path", "body", "query"}}

	assert.ErrorIs(t, err, ErrMissingResourceIdentifier)
	assert.Equal(t, "missing resource identifier: churchId not found in path, body, query", err.Error())
}

func TestQueryError(t *testing.T) {
	err := QueryError("unsupported operator %q", "~=")

	assert.ErrorIs(t, err, ErrQueryConstruction)
	assert.Contains(t, err.Error(), `unsupported operator "~="`)
}

func TestStoreError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, StoreError(nil))
	})

	t.Run("wraps transient cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := StoreError(cause)

		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("keeps query construction errors", func(t *testing.T) {
		qerr := QueryError("bad field")
		err := StoreError(qerr)

		assert.ErrorIs(t, err, ErrQueryConstruction)
		assert.NotErrorIs(t, err, ErrStoreUnavailable)
	})

	t.Run("does not double wrap", func(t *testing.T) {
		first := StoreError(fmt.Errorf("timeout"))
		assert.Equal(t, first, StoreError(first))
	})
}
