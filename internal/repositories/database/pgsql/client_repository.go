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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `client_id, company_name, contact_person, email, phone, address, industry, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var c models.Client
	err := row.Scan(
		&c.ClientID,
		&c.CompanyName,
		&c.ContactPerson,
		&c.Email,
		&c.Phone,
		&c.Address,
		&c.Industry,
		&c.Notes,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveClient inserts a new client. The unique index on company_name surfaces
// duplicate creates as apperrors.ErrDuplicate so the caller can re-find the
// winning row.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.CompanyName,
		modelClient.ContactPerson,
		modelClient.Email,
		modelClient.Phone,
		modelClient.Address,
		modelClient.Industry,
		modelClient.Notes,
		modelClient.CreatedAt,
		modelClient.CreatedBy,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: client for company %s already exists", apperrors.ErrDuplicate, modelClient.CompanyName)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

// FindClientByID retrieves a client by ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	modelClient, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// FindClientByCompanyName retrieves a client by exact company name.
func (r *PgxClientRepository) FindClientByCompanyName(ctx context.Context, companyName string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE company_name = $1;`
	modelClient, err := scanClient(r.Pool.QueryRow(ctx, query, companyName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by company name: %w", err)
	}
	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// ListClients retrieves a token-paginated list of clients by creation time descending.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, nextToken *string) ([]domain.Client, *string, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	args := []interface{}{}
	argNum := 1

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(" WHERE created_at < $%d", argNum)
		args = append(args, cursor)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", argNum)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		modelClients = append(modelClients, c)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	var token *string
	if len(modelClients) > limit {
		modelClients = modelClients[:limit]
		t := pagination.EncodeDateBasedToken(modelClients[limit-1].CreatedAt)
		token = &t
	}

	return mapping.ToDomainClientSlice(modelClients), token, nil
}

// UpdateClient updates a client's contact details and notes.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET contact_person = $1, email = $2, phone = $3, address = $4, industry = $5,
			notes = $6, last_updated_at = $7, last_updated_by = $8
		WHERE client_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelClient.ContactPerson,
		modelClient.Email,
		modelClient.Phone,
		modelClient.Address,
		modelClient.Industry,
		modelClient.Notes,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
		modelClient.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
