package repositories

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByCompanyName retrieves a client by exact company name, used
	// for deduplicating creates. Returns apperrors.ErrNotFound when absent.
	FindClientByCompanyName(ctx context.Context, companyName string) (*domain.Client, error)

	// ListClients retrieves a token-paginated list of clients ordered by creation time.
	ListClients(ctx context.Context, limit int, nextToken *string) ([]domain.Client, *string, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient inserts a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates a client's contact details and notes.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
