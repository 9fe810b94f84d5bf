package pgsql

import (
	"context"
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	"github.com/fieldglass/salesops_backend/internal/models"
	"github.com/fieldglass/salesops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// CountVisits counts visits of any status in the half-open period.
func (r *PgxReportingRepository) CountVisits(ctx context.Context, period domain.ReportPeriod, repIDs []string) (int, error) {
	query := `SELECT COUNT(*) FROM visits WHERE visit_date >= $1 AND visit_date < $2`
	args := []interface{}{period.Start, period.End}
	if repIDs != nil {
		query += ` AND rep_id = ANY($3)`
		args = append(args, repIDs)
	}

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count visits: %w", err)
	}
	return count, nil
}

// CountLeads counts leads of any status created in the half-open period.
func (r *PgxReportingRepository) CountLeads(ctx context.Context, period domain.ReportPeriod, repIDs []string) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE lead_date >= $1 AND lead_date < $2`
	args := []interface{}{period.Start, period.End}
	if repIDs != nil {
		query += ` AND created_by = ANY($3)`
		args = append(args, repIDs)
	}

	var count int
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// FindApprovedConversionsInPeriod retrieves approved conversions whose
// conversion date falls in the half-open period.
func (r *PgxReportingRepository) FindApprovedConversionsInPeriod(ctx context.Context, period domain.ReportPeriod, repIDs []string) ([]domain.Conversion, error) {
	query := `
		SELECT ` + conversionColumns + `
		FROM conversions
		WHERE status = $1 AND conversion_date >= $2 AND conversion_date < $3`
	args := []interface{}{string(domain.ConversionApproved), period.Start, period.End}
	if repIDs != nil {
		query += ` AND rep_id = ANY($4)`
		args = append(args, repIDs)
	}
	query += ` ORDER BY conversion_date;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query approved conversions: %w", err)
	}
	defer rows.Close()

	modelConvs := []models.Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		modelConvs = append(modelConvs, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating conversion rows: %w", rows.Err())
	}

	return mapping.ToDomainConversionSlice(modelConvs), nil
}
