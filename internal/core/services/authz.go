package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
)

// requireRole loads the requesting user and checks they hold at least the
// given role. Inactive users are treated as forbidden.
func requireRole(ctx context.Context, userRepo portsrepo.UserReader, userID string, role domain.UserRole) (*domain.User, error) {
	user, err := userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: requesting user not found", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrForbidden)
	}
	if !user.Role.AtLeast(role) {
		return nil, fmt.Errorf("%w: requires %s role or above", apperrors.ErrForbidden, role)
	}
	return user, nil
}
