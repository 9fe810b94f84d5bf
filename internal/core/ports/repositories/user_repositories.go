package repositories

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, including the stored password
	// hash, for authentication.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers retrieves all active users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUserIDsByManager retrieves the IDs of all active users reporting to
	// the given manager. Used for team-scoped reporting.
	ListUserIDsByManager(ctx context.Context, managerID string) ([]string, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser inserts a new user with their password hash.
	SaveUser(ctx context.Context, user models.User) error

	// UpdateUser updates a user's profile fields.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
