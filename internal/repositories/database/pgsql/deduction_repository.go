package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	"github.com/fieldglass/salesops_backend/internal/models"
	"github.com/fieldglass/salesops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const deductionColumns = `deduction_id, label, percentage, applies_before_commission, is_active, sort_order, created_at, created_by, last_updated_at, last_updated_by`

type PgxDeductionRepository struct {
	BaseRepository
}

func newPgxDeductionRepository(pool *pgxpool.Pool) portsrepo.DeductionRepositoryFacade {
	return &PgxDeductionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeductionRepositoryFacade = (*PgxDeductionRepository)(nil)

func scanDeduction(row pgx.Row) (models.Deduction, error) {
	var d models.Deduction
	err := row.Scan(
		&d.DeductionID,
		&d.Label,
		&d.Percentage,
		&d.AppliesBeforeCommission,
		&d.IsActive,
		&d.SortOrder,
		&d.CreatedAt,
		&d.CreatedBy,
		&d.LastUpdatedAt,
		&d.LastUpdatedBy,
	)
	return d, err
}

// SaveDeduction inserts a new deduction rule.
func (r *PgxDeductionRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	modelDeduction := mapping.ToModelDeduction(deduction)
	query := `
		INSERT INTO deductions (` + deductionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelDeduction.DeductionID,
		modelDeduction.Label,
		modelDeduction.Percentage,
		modelDeduction.AppliesBeforeCommission,
		modelDeduction.IsActive,
		modelDeduction.SortOrder,
		modelDeduction.CreatedAt,
		modelDeduction.CreatedBy,
		modelDeduction.LastUpdatedAt,
		modelDeduction.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save deduction: %w", err)
	}
	return nil
}

// FindDeductionByID retrieves a deduction rule by ID.
func (r *PgxDeductionRepository) FindDeductionByID(ctx context.Context, deductionID string) (*domain.Deduction, error) {
	query := `SELECT ` + deductionColumns + ` FROM deductions WHERE deduction_id = $1;`
	modelDeduction, err := scanDeduction(r.Pool.QueryRow(ctx, query, deductionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deduction by ID %s: %w", deductionID, err)
	}
	domainDeduction := mapping.ToDomainDeduction(modelDeduction)
	return &domainDeduction, nil
}

// ListDeductions retrieves all deduction rules in application order.
func (r *PgxDeductionRepository) ListDeductions(ctx context.Context, includeInactive bool) ([]domain.Deduction, error) {
	query := `SELECT ` + deductionColumns + ` FROM deductions`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order, created_at;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deductions: %w", err)
	}
	defer rows.Close()

	modelDeductions := []models.Deduction{}
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction row: %w", err)
		}
		modelDeductions = append(modelDeductions, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating deduction rows: %w", rows.Err())
	}

	return mapping.ToDomainDeductionSlice(modelDeductions), nil
}

// ListActiveDeductions retrieves the active rule set in application order.
func (r *PgxDeductionRepository) ListActiveDeductions(ctx context.Context) ([]domain.Deduction, error) {
	return r.ListDeductions(ctx, false)
}

// UpdateDeduction updates an existing rule.
func (r *PgxDeductionRepository) UpdateDeduction(ctx context.Context, deduction domain.Deduction) error {
	modelDeduction := mapping.ToModelDeduction(deduction)
	query := `
		UPDATE deductions
		SET label = $1, percentage = $2, applies_before_commission = $3, is_active = $4,
			sort_order = $5, last_updated_at = $6, last_updated_by = $7
		WHERE deduction_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelDeduction.Label,
		modelDeduction.Percentage,
		modelDeduction.AppliesBeforeCommission,
		modelDeduction.IsActive,
		modelDeduction.SortOrder,
		modelDeduction.LastUpdatedAt,
		modelDeduction.LastUpdatedBy,
		modelDeduction.DeductionID,
	)
	if err != nil {
		return fmt.Errorf("failed to update deduction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("deduction not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
