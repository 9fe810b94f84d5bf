package services

import (
	"context"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
)

// AuthSvcFacade defines authentication operations.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns an access token with the
	// authenticated profile.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// GenerateAccessToken issues a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
