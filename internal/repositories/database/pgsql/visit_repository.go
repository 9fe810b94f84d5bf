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
	"github.com/fieldglass/salesops_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const visitColumns = `visit_id, rep_id, visit_date, visit_time, company_name, contact_person, contact_email, visit_type, duration_minutes, outcome, notes, lead_generated, lead_id, follow_up_required, follow_up_date, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxVisitRepository struct {
	BaseRepository
}

func newPgxVisitRepository(pool *pgxpool.Pool) portsrepo.VisitRepositoryFacade {
	return &PgxVisitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VisitRepositoryFacade = (*PgxVisitRepository)(nil)

func scanVisit(row pgx.Row) (models.Visit, error) {
	var v models.Visit
	err := row.Scan(
		&v.VisitID,
		&v.RepID,
		&v.VisitDate,
		&v.VisitTime,
		&v.CompanyName,
		&v.ContactPerson,
		&v.ContactEmail,
		&v.VisitType,
		&v.DurationMinutes,
		&v.Outcome,
		&v.Notes,
		&v.LeadGenerated,
		&v.LeadID,
		&v.FollowUpRequired,
		&v.FollowUpDate,
		&v.Status,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	return v, err
}

// SaveVisit inserts a new visit record.
func (r *PgxVisitRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	modelVisit := mapping.ToModelVisit(visit)
	query := `
		INSERT INTO visits (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelVisit.VisitID,
		modelVisit.RepID,
		modelVisit.VisitDate,
		modelVisit.VisitTime,
		modelVisit.CompanyName,
		modelVisit.ContactPerson,
		modelVisit.ContactEmail,
		modelVisit.VisitType,
		modelVisit.DurationMinutes,
		modelVisit.Outcome,
		modelVisit.Notes,
		modelVisit.LeadGenerated,
		modelVisit.LeadID,
		modelVisit.FollowUpRequired,
		modelVisit.FollowUpDate,
		modelVisit.Status,
		modelVisit.CreatedAt,
		modelVisit.CreatedBy,
		modelVisit.LastUpdatedAt,
		modelVisit.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save visit: %w", err)
	}
	return nil
}

// FindVisitByID retrieves a visit by ID.
func (r *PgxVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE visit_id = $1;`
	modelVisit, err := scanVisit(r.Pool.QueryRow(ctx, query, visitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find visit by ID %s: %w", visitID, err)
	}
	domainVisit := mapping.ToDomainVisit(modelVisit)
	return &domainVisit, nil
}

// ListVisitsByRep retrieves a token-paginated list of a rep's visits by visit date descending.
func (r *PgxVisitRepository) ListVisitsByRep(ctx context.Context, repID string, limit int, nextToken *string) ([]domain.Visit, *string, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE rep_id = $1`
	args := []interface{}{repID}
	argNum := 2

	if nextToken != nil && *nextToken != "" {
		visitDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (visit_date, created_at) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, visitDate, createdAt)
		argNum += 2
	}

	query += fmt.Sprintf(" ORDER BY visit_date DESC, created_at DESC LIMIT $%d;", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	modelVisits := []models.Visit{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan visit row: %w", err)
		}
		modelVisits = append(modelVisits, v)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating visit rows: %w", rows.Err())
	}

	var token *string
	if len(modelVisits) > limit {
		modelVisits = modelVisits[:limit]
		last := modelVisits[limit-1]
		t := pagination.EncodeToken(last.VisitDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainVisitSlice(modelVisits), token, nil
}

// UpdateVisit updates a visit's mutable fields.
func (r *PgxVisitRepository) UpdateVisit(ctx context.Context, visit domain.Visit) error {
	modelVisit := mapping.ToModelVisit(visit)
	query := `
		UPDATE visits
		SET status = $1, outcome = $2, lead_id = $3, follow_up_required = $4,
			follow_up_date = $5, notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE visit_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelVisit.Status,
		modelVisit.Outcome,
		modelVisit.LeadID,
		modelVisit.FollowUpRequired,
		modelVisit.FollowUpDate,
		modelVisit.Notes,
		modelVisit.LastUpdatedAt,
		modelVisit.LastUpdatedBy,
		modelVisit.VisitID,
	)
	if err != nil {
		return fmt.Errorf("failed to update visit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("visit not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
