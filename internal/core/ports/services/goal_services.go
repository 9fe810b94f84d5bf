package services

import (
	"context"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// GoalReaderSvc defines read operations for goal data
type GoalReaderSvc interface {
	// GetGoalByID retrieves a specific goal by its ID.
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoalsByUser retrieves all goals owned by a user.
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriterSvc defines write operations for goal data
type GoalWriterSvc interface {
	// CreateGoal persists a new goal with a zero counter.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest, ownerUserID string) (*domain.Goal, error)

	// RecordProgress adds delta to the user's active goal of the given type
	// covering day. Missing goals are not an error; the increment is skipped.
	RecordProgress(ctx context.Context, userID string, goalType string, day time.Time, delta decimal.Decimal) error
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
