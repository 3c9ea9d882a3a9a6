package usecase

import (
	"context"
	"errors"
	"fmt"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	Issue(user *entity.User) (*entity.TokenPair, error)
	IssueAccess(user *entity.User) (string, error)
	// VerifyRefresh returns the username a refresh token was issued to.
	VerifyRefresh(token string) (string, error)
}

// AuthService verifies credentials and issues session tokens
type AuthService struct {
	userRepo repository.UserRepository
	issuer   TokenIssuer
	logger   logger.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, issuer TokenIssuer, logger logger.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Login checks the password against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, *entity.TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login rejected", "username", username)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issuer.Issue(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("User logged in", "username", username)
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. The user
// must still exist, and the new token carries their current role.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	username, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", repository.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	return s.issuer.IssueAccess(user)
}

// HashPassword returns the bcrypt hash stored for a new password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
