// Package auth provides password hashing and access-token handling.
package auth

import (
	"errors"

	apperrors "ceslar/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword generates a bcrypt hash. Passwords over 72 bytes are rejected.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plain text password with a hash. A mismatch or an
// unusable hash both report ErrInvalidCredentials so callers cannot tell them apart.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return apperrors.ErrInvalidCredentials
	}
	return errors.Join(apperrors.ErrInvalidCredentials, err)
}
