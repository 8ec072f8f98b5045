// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/pkg/auth"
	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing caller data
const (
	UserIDKey = "userID"
	ClaimsKey = "claims"
)

// ClaimsResolver builds the caller's claims from a verified user id.
type ClaimsResolver interface {
	Resolve(ctx context.Context, uid string) (*authz.Claims, error)
}

var _ ClaimsResolver = (*authz.ClaimsResolver)(nil)

// Auth returns a middleware that requires a valid bearer token and stores
// the caller's claims in the context.
func Auth(tokens auth.TokenManager, resolver ClaimsResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, tokens, resolver)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves claims when a valid token is present and otherwise
// lets the request through anonymously.
func OptionalAuth(tokens auth.TokenManager, resolver ClaimsResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		claims, err := authenticate(c, tokens, resolver)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotAuthenticated) &&
				!errors.Is(err, apperrors.ErrInvalidToken) &&
				!errors.Is(err, apperrors.ErrTokenExpired) {
				slog.WarnContext(c.Request.Context(), "optional auth: resolve claims", "error", err)
			}
			c.Next()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func authenticate(c *gin.Context, tokens auth.TokenManager, resolver ClaimsResolver) (*authz.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, apperrors.ErrInvalidToken
	}

	token, err := tokens.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	return resolver.Resolve(c.Request.Context(), token.UserID)
}

func setClaims(c *gin.Context, claims *authz.Claims) {
	c.Set(UserIDKey, claims.UID)
	c.Set(ClaimsKey, claims)
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetClaims retrieves the caller's claims. It returns nil for anonymous requests.
func GetClaims(c *gin.Context) *authz.Claims {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := v.(*authz.Claims)
	return claims
}
