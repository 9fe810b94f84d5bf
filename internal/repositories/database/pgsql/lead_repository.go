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

const leadColumns = `lead_id, company_name, contact_name, contact_email, contact_phone, address, industry, source, status, estimated_revenue, currency, lead_date, next_follow_up, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxLeadRepository struct {
	BaseRepository
}

func newPgxLeadRepository(pool *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

func scanLead(row pgx.Row) (models.Lead, error) {
	var l models.Lead
	err := row.Scan(
		&l.LeadID,
		&l.CompanyName,
		&l.ContactName,
		&l.ContactEmail,
		&l.ContactPhone,
		&l.Address,
		&l.Industry,
		&l.Source,
		&l.Status,
		&l.EstimatedRevenue,
		&l.Currency,
		&l.LeadDate,
		&l.NextFollowUp,
		&l.Notes,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	return l, err
}

// SaveLead inserts a new lead.
func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	modelLead := mapping.ToModelLead(lead)
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelLead.LeadID,
		modelLead.CompanyName,
		modelLead.ContactName,
		modelLead.ContactEmail,
		modelLead.ContactPhone,
		modelLead.Address,
		modelLead.Industry,
		modelLead.Source,
		modelLead.Status,
		modelLead.EstimatedRevenue,
		modelLead.Currency,
		modelLead.LeadDate,
		modelLead.NextFollowUp,
		modelLead.Notes,
		modelLead.CreatedAt,
		modelLead.CreatedBy,
		modelLead.LastUpdatedAt,
		modelLead.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}
	return nil
}

// FindLeadByID retrieves a lead by ID.
func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE lead_id = $1;`
	modelLead, err := scanLead(r.Pool.QueryRow(ctx, query, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lead by ID %s: %w", leadID, err)
	}
	domainLead := mapping.ToDomainLead(modelLead)
	return &domainLead, nil
}

// ListLeads retrieves a token-paginated list of leads by lead date descending.
func (r *PgxLeadRepository) ListLeads(ctx context.Context, createdBy *string, status *domain.LeadStatus, limit int, nextToken *string) ([]domain.Lead, *string, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if createdBy != nil {
		query += fmt.Sprintf(" AND created_by = $%d", argNum)
		args = append(args, *createdBy)
		argNum++
	}
	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, string(*status))
		argNum++
	}
	if nextToken != nil && *nextToken != "" {
		leadDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" AND (lead_date, created_at) < ($%d, $%d)", argNum, argNum+1)
		args = append(args, leadDate, createdAt)
		argNum += 2
	}

	query += fmt.Sprintf(" ORDER BY lead_date DESC, created_at DESC LIMIT $%d;", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	modelLeads := []models.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		modelLeads = append(modelLeads, l)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating lead rows: %w", rows.Err())
	}

	var token *string
	if len(modelLeads) > limit {
		modelLeads = modelLeads[:limit]
		last := modelLeads[limit-1]
		t := pagination.EncodeToken(last.LeadDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainLeadSlice(modelLeads), token, nil
}

// UpdateLead updates a lead's mutable fields.
func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	modelLead := mapping.ToModelLead(lead)
	query := `
		UPDATE leads
		SET status = $1, estimated_revenue = $2, currency = $3, next_follow_up = $4,
			notes = $5, last_updated_at = $6, last_updated_by = $7
		WHERE lead_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelLead.Status,
		modelLead.EstimatedRevenue,
		modelLead.Currency,
		modelLead.NextFollowUp,
		modelLead.Notes,
		modelLead.LastUpdatedAt,
		modelLead.LastUpdatedBy,
		modelLead.LeadID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("lead not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
