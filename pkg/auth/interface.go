package auth

import "time"

//go:generate mockgen -destination=mocks/mock_token_manager.go -package=mocks ceslar/pkg/auth TokenManager

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	// GenerateToken issues a token for userID and reports when it expires.
	GenerateToken(userID string) (string, time.Time, error)
	// ValidateToken verifies a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}

var _ TokenManager = (*JWTManager)(nil)
