package auth

import (
	"errors"
	"time"

	apperrors "ceslar/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is the iss claim of every token this service signs.
const Issuer = "ceslar"

// Claims is the token payload. Roles are not embedded; they are resolved per
// request so membership changes apply without reissuing tokens.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens.
type JWTManager struct {
	secret []byte
	expiry time.Duration
	parser *jwt.Parser
}

// NewJWTManager creates a new JWT manager.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

// GenerateToken creates a signed token for userID.
func (j *JWTManager) GenerateToken(userID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.expiry)

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateToken parses and verifies a token. Expired tokens report
// ErrTokenExpired; every other failure reports ErrInvalidToken.
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := j.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, errors.Join(apperrors.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
