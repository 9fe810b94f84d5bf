package services

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
)

// VisitReaderSvc defines read operations for visit data
type VisitReaderSvc interface {
	// GetVisitByID retrieves a specific visit by its ID.
	GetVisitByID(ctx context.Context, visitID string) (*domain.Visit, error)

	// ListVisits retrieves a paginated list of the requesting rep's visits.
	ListVisits(ctx context.Context, params dto.ListVisitsParams, requestingUserID string) (*dto.ListVisitsResponse, error)
}

// VisitWriterSvc defines write operations for visit data
type VisitWriterSvc interface {
	// LogVisit records a visit and runs its side effects: client dedup-create,
	// lead generation, goal increment, reminder and calendar dispatch. The visit
	// write is authoritative; side-effect failures come back as warnings.
	LogVisit(ctx context.Context, req dto.LogVisitRequest, repUserID string) (*domain.Visit, []string, error)

	// CompleteVisit marks a scheduled visit completed and records its outcome.
	CompleteVisit(ctx context.Context, visitID string, outcome *string, requestingUserID string) (*domain.Visit, []string, error)
}

// VisitSvcFacade combines all visit-related service interfaces
type VisitSvcFacade interface {
	VisitReaderSvc
	VisitWriterSvc
}
