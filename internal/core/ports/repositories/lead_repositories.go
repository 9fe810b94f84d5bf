package repositories

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// LeadReader defines read operations for lead data.
type LeadReader interface {
	// FindLeadByID retrieves a specific lead by its unique identifier.
	FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)

	// ListLeads retrieves a token-paginated list of leads ordered by lead date
	// descending, optionally filtered by status and creator.
	ListLeads(ctx context.Context, createdBy *string, status *domain.LeadStatus, limit int, nextToken *string) ([]domain.Lead, *string, error)
}

// LeadWriter defines write operations for lead data.
type LeadWriter interface {
	// SaveLead inserts a new lead.
	SaveLead(ctx context.Context, lead domain.Lead) error

	// UpdateLead updates a lead's mutable fields (status, follow-up, notes, estimate).
	UpdateLead(ctx context.Context, lead domain.Lead) error
}

// LeadRepositoryFacade combines all lead-related repository interfaces.
type LeadRepositoryFacade interface {
	LeadReader
	LeadWriter
}
