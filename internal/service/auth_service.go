package service

import (
	"context"
	"errors"

	"ceslar/internal/authz"
	apperrors "ceslar/internal/errors"
	"ceslar/internal/models"
	"ceslar/internal/repository"
	"ceslar/pkg/auth"
)

// AuthService handles registration, login and the claims echo.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account and returns an access token for it.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
		Phone:    req.Phone,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.loginResponse(user)
}

// Login verifies credentials and returns an access token.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.loginResponse(user)
}

// Me returns the caller's user record together with the claims the gates see.
func (s *AuthService) Me(ctx context.Context, claims *authz.Claims) (*models.MeResponse, error) {
	if claims == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	oid, err := objectID(claims.UID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	return &models.MeResponse{User: *user, Claims: *claims}, nil
}

func (s *AuthService) loginResponse(user *models.User) (*models.LoginResponse, error) {
	token, expiresAt, err := s.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *user,
	}, nil
}
