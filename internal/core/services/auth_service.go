package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/utils/mapping"
	"github.com/fieldglass/salesops_backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService verifies credentials and issues JWT access tokens.
type authService struct {
	BaseService
	userRepo portsrepo.UserReader
	cfg      *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and returns an access token.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so the response does not reveal
			// which part was wrong.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.LogWarn(ctx, "Login failed", "email", req.Email)
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is inactive", apperrors.ErrForbidden)
	}

	domainUser := mapping.ToDomainUser(*user)
	token, _, err := s.GenerateAccessToken(ctx, &domainUser)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Login succeeded", "user_id", user.UserID)
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(&domainUser),
	}, nil
}

// GenerateAccessToken issues a signed JWT for the user.
func (s *authService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiry := now.Add(s.cfg.JWTExpiryDuration)

	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiry, nil
}
