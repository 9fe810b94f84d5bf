package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	"github.com/fieldglass/salesops_backend/internal/models"
	"github.com/fieldglass/salesops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const goalColumns = `goal_id, user_id, goal_type, target_value, current_value, currency, period_start, period_end, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func scanGoal(row pgx.Row) (models.Goal, error) {
	var g models.Goal
	err := row.Scan(
		&g.GoalID,
		&g.UserID,
		&g.GoalType,
		&g.TargetValue,
		&g.CurrentValue,
		&g.Currency,
		&g.PeriodStart,
		&g.PeriodEnd,
		&g.Description,
		&g.CreatedAt,
		&g.CreatedBy,
		&g.LastUpdatedAt,
		&g.LastUpdatedBy,
	)
	return g, err
}

// SaveGoal inserts a new goal.
func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	modelGoal := mapping.ToModelGoal(goal)
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelGoal.GoalID,
		modelGoal.UserID,
		modelGoal.GoalType,
		modelGoal.TargetValue,
		modelGoal.CurrentValue,
		modelGoal.Currency,
		modelGoal.PeriodStart,
		modelGoal.PeriodEnd,
		modelGoal.Description,
		modelGoal.CreatedAt,
		modelGoal.CreatedBy,
		modelGoal.LastUpdatedAt,
		modelGoal.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// FindGoalByID retrieves a goal by ID.
func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1;`
	modelGoal, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}
	domainGoal := mapping.ToDomainGoal(modelGoal)
	return &domainGoal, nil
}

// FindActiveGoal retrieves the user's goal of the given type covering day.
// When periods overlap the most recently started goal wins.
func (r *PgxGoalRepository) FindActiveGoal(ctx context.Context, userID string, goalType string, day time.Time) (*domain.Goal, error) {
	query := `
		SELECT ` + goalColumns + `
		FROM goals
		WHERE user_id = $1 AND goal_type = $2 AND period_start <= $3 AND period_end >= $3
		ORDER BY period_start DESC
		LIMIT 1;
	`
	modelGoal, err := scanGoal(r.Pool.QueryRow(ctx, query, userID, goalType, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active goal: %w", err)
	}
	domainGoal := mapping.ToDomainGoal(modelGoal)
	return &domainGoal, nil
}

// ListGoalsByUser retrieves all goals owned by a user, newest period first.
func (r *PgxGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY period_start DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	modelGoals := []models.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		modelGoals = append(modelGoals, g)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}

	return mapping.ToDomainGoalSlice(modelGoals), nil
}

// IncrementGoalProgress atomically adds delta to the goal's current value.
func (r *PgxGoalRepository) IncrementGoalProgress(ctx context.Context, goalID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE goals
		SET current_value = current_value + $1, last_updated_at = $2, last_updated_by = $3
		WHERE goal_id = $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, delta, updatedAt, updatedBy, goalID)
	if err != nil {
		return fmt.Errorf("failed to increment goal progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("goal not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
