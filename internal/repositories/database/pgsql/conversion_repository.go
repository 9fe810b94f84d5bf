package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	"github.com/fieldglass/salesops_backend/internal/models"
	"github.com/fieldglass/salesops_backend/internal/utils/mapping"
	"github.com/fieldglass/salesops_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const conversionColumns = `conversion_id, lead_id, rep_id, conversion_date, revenue_amount, currency, commission_rate, commissionable_amount, commission_amount, deductions_applied, status, submitted_by, submitted_at, recommended_by, recommended_at, approved_by, approved_at, rejection_reason, notes, version, created_at, created_by, last_updated_at, last_updated_by`

type PgxConversionRepository struct {
	BaseRepository
}

func newPgxConversionRepository(pool *pgxpool.Pool) portsrepo.ConversionRepositoryFacade {
	return &PgxConversionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConversionRepositoryFacade = (*PgxConversionRepository)(nil)

func scanConversion(row pgx.Row) (models.Conversion, error) {
	var c models.Conversion
	var trail []byte
	err := row.Scan(
		&c.ConversionID,
		&c.LeadID,
		&c.RepID,
		&c.ConversionDate,
		&c.RevenueAmount,
		&c.Currency,
		&c.CommissionRate,
		&c.CommissionableAmount,
		&c.CommissionAmount,
		&trail,
		&c.Status,
		&c.SubmittedBy,
		&c.SubmittedAt,
		&c.RecommendedBy,
		&c.RecommendedAt,
		&c.ApprovedBy,
		&c.ApprovedAt,
		&c.RejectionReason,
		&c.Notes,
		&c.Version,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return c, err
	}
	if len(trail) > 0 {
		if err := json.Unmarshal(trail, &c.DeductionsApplied); err != nil {
			return c, fmt.Errorf("failed to decode deduction trail: %w", err)
		}
	}
	return c, nil
}

func marshalTrail(trail []models.AppliedDeduction) ([]byte, error) {
	if trail == nil {
		return nil, nil
	}
	data, err := json.Marshal(trail)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deduction trail: %w", err)
	}
	return data, nil
}

// SaveConversion inserts a newly submitted conversion.
func (r *PgxConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) error {
	modelConv := mapping.ToModelConversion(conversion)
	trail, err := marshalTrail(modelConv.DeductionsApplied)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO conversions (` + conversionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = r.Pool.Exec(ctx, query,
		modelConv.ConversionID,
		modelConv.LeadID,
		modelConv.RepID,
		modelConv.ConversionDate,
		modelConv.RevenueAmount,
		modelConv.Currency,
		modelConv.CommissionRate,
		modelConv.CommissionableAmount,
		modelConv.CommissionAmount,
		trail,
		modelConv.Status,
		modelConv.SubmittedBy,
		modelConv.SubmittedAt,
		modelConv.RecommendedBy,
		modelConv.RecommendedAt,
		modelConv.ApprovedBy,
		modelConv.ApprovedAt,
		modelConv.RejectionReason,
		modelConv.Notes,
		modelConv.Version,
		modelConv.CreatedAt,
		modelConv.CreatedBy,
		modelConv.LastUpdatedAt,
		modelConv.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion: %w", err)
	}
	return nil
}

// FindConversionByID retrieves a conversion by ID.
func (r *PgxConversionRepository) FindConversionByID(ctx context.Context, conversionID string) (*domain.Conversion, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions WHERE conversion_id = $1;`
	modelConv, err := scanConversion(r.Pool.QueryRow(ctx, query, conversionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find conversion by ID %s: %w", conversionID, err)
	}
	domainConv := mapping.ToDomainConversion(modelConv)
	return &domainConv, nil
}

// ListConversions retrieves a filtered, token-paginated list of conversions
// by conversion date descending.
func (r *PgxConversionRepository) ListConversions(ctx context.Context, filter portsrepo.ListConversionsFilter, limit int, nextToken *string) ([]domain.Conversion, *string, error) {
	query := `SELECT ` + conversionColumns + ` FROM conversions WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.RepID != nil {
		query += fmt.Sprintf(" AND rep_id = $%d", argNum)
		args = append(args, *filter.RepID)
		argNum++
	} else if len(filter.RepIDs) > 0 {
		query += fmt.Sprintf(" AND rep_id = ANY($%d)", argNum)
		args = append(args, filter.RepIDs)
		argNum++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*filter.Status))
		argNum++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND conversion_date >= $%d", argNum)
		args = append(args, *filter.DateFrom)
		argNum++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND conversion_date <= $%d", argNum)
		args = append(args, *filter.DateTo)
		argNum++
	}
	if nextToken != nil && *nextToken != "" {
		conversionDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (conversion_date, created_at) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, conversionDate, createdAt)
		argNum += 2
	}

	query += fmt.Sprintf(" ORDER BY conversion_date DESC, created_at DESC LIMIT $%d;", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query conversions: %w", err)
	}
	defer rows.Close()

	modelConvs := []models.Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		modelConvs = append(modelConvs, c)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating conversion rows: %w", rows.Err())
	}

	var token *string
	if len(modelConvs) > limit {
		modelConvs = modelConvs[:limit]
		last := modelConvs[limit-1]
		t := pagination.EncodeToken(last.ConversionDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainConversionSlice(modelConvs), token, nil
}

// ApplyTransition persists a workflow transition as one guarded UPDATE. The
// WHERE clause pins the expected status and version; zero affected rows means
// a concurrent transition won and surfaces as apperrors.ErrConflict.
func (r *PgxConversionRepository) ApplyTransition(ctx context.Context, conversion domain.Conversion, expectedStatus domain.ConversionStatus, expectedVersion int64) error {
	modelConv := mapping.ToModelConversion(conversion)
	trail, err := marshalTrail(modelConv.DeductionsApplied)
	if err != nil {
		return err
	}

	query := `
		UPDATE conversions
		SET status = $1,
			commission_rate = $2,
			commissionable_amount = $3,
			commission_amount = $4,
			deductions_applied = COALESCE($5, deductions_applied),
			recommended_by = $6,
			recommended_at = $7,
			approved_by = $8,
			approved_at = $9,
			rejection_reason = $10,
			version = $11,
			last_updated_at = $12,
			last_updated_by = $13
		WHERE conversion_id = $14 AND status = $15 AND version = $16;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelConv.Status,
		modelConv.CommissionRate,
		modelConv.CommissionableAmount,
		modelConv.CommissionAmount,
		trail,
		modelConv.RecommendedBy,
		modelConv.RecommendedAt,
		modelConv.ApprovedBy,
		modelConv.ApprovedAt,
		modelConv.RejectionReason,
		modelConv.Version,
		modelConv.LastUpdatedAt,
		modelConv.LastUpdatedBy,
		modelConv.ConversionID,
		string(expectedStatus),
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to apply conversion transition: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: conversion %s changed since it was read", apperrors.ErrConflict, modelConv.ConversionID)
	}
	return nil
}
