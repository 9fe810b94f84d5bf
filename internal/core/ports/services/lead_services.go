package services

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
)

// LeadReaderSvc defines read operations for lead data
type LeadReaderSvc interface {
	// GetLeadByID retrieves a specific lead by its ID.
	GetLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)

	// ListLeads retrieves a paginated list of leads.
	ListLeads(ctx context.Context, params dto.ListLeadsParams, requestingUserID string) (*dto.ListLeadsResponse, error)
}

// LeadWriterSvc defines write operations for lead data
type LeadWriterSvc interface {
	// CreateLead persists a new lead in new status.
	CreateLead(ctx context.Context, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error)

	// UpdateLeadStatus moves a lead along the pipeline; invalid transitions
	// fail with a validation error.
	UpdateLeadStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest, requestingUserID string) (*domain.Lead, error)
}

// LeadSvcFacade combines all lead-related service interfaces
type LeadSvcFacade interface {
	LeadReaderSvc
	LeadWriterSvc
}
