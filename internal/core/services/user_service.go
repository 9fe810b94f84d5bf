package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// userService manages user profiles and the reporting hierarchy.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if _, err := requireRole(ctx, s.userRepo, creatorUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if req.ManagerID != nil {
		manager, err := s.userRepo.FindUserByID(ctx, *req.ManagerID)
		if err != nil {
			return nil, fmt.Errorf("%w: manager %s not found", apperrors.ErrValidation, *req.ManagerID)
		}
		if !manager.IsManagerOrAbove() {
			return nil, fmt.Errorf("%w: user %s cannot be a manager", apperrors.ErrValidation, *req.ManagerID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:                uuid.NewString(),
		Name:                  req.Name,
		Email:                 strings.ToLower(req.Email),
		PasswordHash:          string(hash),
		Role:                  req.Role,
		ManagerID:             req.ManagerID,
		DefaultCommissionRate: req.DefaultCommissionRate,
		PreferredCurrency:     req.PreferredCurrency,
		IsActive:              true,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "email", user.Email)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	created, err := s.userRepo.FindUserByID(ctx, user.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload created user: %w", err)
	}

	s.LogInfo(ctx, "User created", "user_id", user.UserID, "role", req.Role)
	return created, nil
}

// UpdateUser updates a user profile. Role, manager and active-flag changes
// require admin authority; other fields may be edited by the user themselves.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleRep)
	if err != nil {
		return nil, err
	}

	isSelf := actor.UserID == userID
	isAdmin := actor.Role.AtLeast(domain.RoleAdmin)
	if !isSelf && !isAdmin {
		return nil, fmt.Errorf("%w: cannot edit another user's profile", apperrors.ErrForbidden)
	}
	if (req.Role != nil || req.ManagerID != nil || req.IsActive != nil || req.DefaultCommissionRate != nil) && !isAdmin {
		return nil, fmt.Errorf("%w: role, manager, rate and status changes require admin", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	if req.ManagerID != nil {
		user.ManagerID = req.ManagerID
	}
	if req.DefaultCommissionRate != nil {
		user.DefaultCommissionRate = req.DefaultCommissionRate
	}
	if req.PreferredCurrency != nil {
		user.PreferredCurrency = req.PreferredCurrency
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", "user_id", userID)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a specific user.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListUsers retrieves all active users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// ListTeamMemberIDs retrieves the IDs of active users reporting to the manager.
func (s *userService) ListTeamMemberIDs(ctx context.Context, managerID string) ([]string, error) {
	ids, err := s.userRepo.ListUserIDsByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return ids, nil
}
