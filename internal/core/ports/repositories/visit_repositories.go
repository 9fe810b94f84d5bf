package repositories

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// VisitReader defines read operations for visit data.
type VisitReader interface {
	// FindVisitByID retrieves a specific visit by its unique identifier.
	FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error)

	// ListVisitsByRep retrieves a token-paginated list of a rep's visits
	// ordered by visit date descending.
	ListVisitsByRep(ctx context.Context, repID string, limit int, nextToken *string) ([]domain.Visit, *string, error)
}

// VisitWriter defines write operations for visit data.
type VisitWriter interface {
	// SaveVisit inserts a new visit record.
	SaveVisit(ctx context.Context, visit domain.Visit) error

	// UpdateVisit updates a visit's mutable fields (status, outcome, lead linkage).
	UpdateVisit(ctx context.Context, visit domain.Visit) error
}

// VisitRepositoryFacade combines all visit-related repository interfaces.
type VisitRepositoryFacade interface {
	VisitReader
	VisitWriter
}
