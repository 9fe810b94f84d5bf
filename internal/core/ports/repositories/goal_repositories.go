package repositories

import (
	"context"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for goal data.
type GoalReader interface {
	// FindGoalByID retrieves a specific goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// FindActiveGoal retrieves the user's goal of the given type whose period
	// covers the given day, or apperrors.ErrNotFound when none exists.
	FindActiveGoal(ctx context.Context, userID string, goalType string, day time.Time) (*domain.Goal, error)

	// ListGoalsByUser retrieves all goals owned by a user.
	ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data.
type GoalWriter interface {
	// SaveGoal inserts a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// IncrementGoalProgress atomically adds delta to the goal's current value.
	// Goal counters only ever move forward; delta must be positive.
	IncrementGoalProgress(ctx context.Context, goalID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
