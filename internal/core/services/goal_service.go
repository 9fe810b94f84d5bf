package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService manages period-scoped goal counters.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
	userRepo portsrepo.UserReader
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, userRepo portsrepo.UserReader) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CreateGoal persists a new goal with a zero counter.
func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, ownerUserID string) (*domain.Goal, error) {
	if _, err := requireRole(ctx, s.userRepo, ownerUserID, domain.RoleRep); err != nil {
		return nil, err
	}

	if req.TargetValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target value must be positive", apperrors.ErrValidation)
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, fmt.Errorf("%w: period end must not precede period start", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	goal := domain.Goal{
		GoalID:       uuid.NewString(),
		UserID:       ownerUserID,
		GoalType:     req.GoalType,
		TargetValue:  req.TargetValue,
		CurrentValue: decimal.Zero,
		Currency:     req.Currency,
		PeriodStart:  req.PeriodStart,
		PeriodEnd:    req.PeriodEnd,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", "goal_type", req.GoalType)
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	return &goal, nil
}

// RecordProgress adds delta to the user's active goal of the given type
// covering day. Having no such goal is not an error.
func (s *goalService) RecordProgress(ctx context.Context, userID string, goalType string, day time.Time, delta decimal.Decimal) error {
	if delta.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: goal progress delta must be positive", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.FindActiveGoal(ctx, userID, goalType, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No active goal for progress", "user_id", userID, "goal_type", goalType)
			return nil
		}
		return fmt.Errorf("failed to find active goal: %w", err)
	}

	if err := s.goalRepo.IncrementGoalProgress(ctx, goal.GoalID, delta, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to increment goal progress: %w", err)
	}
	return nil
}

// GetGoalByID retrieves a specific goal.
func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}
	return goal, nil
}

// ListGoalsByUser retrieves all goals owned by a user.
func (s *goalService) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if goals == nil {
		return []domain.Goal{}, nil
	}
	return goals, nil
}
