package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/google/uuid"
)

const defaultLeadPageSize = 25

// leadService manages leads and their pipeline transitions.
type leadService struct {
	BaseService
	leadRepo portsrepo.LeadRepositoryFacade
	userRepo portsrepo.UserReader
}

// NewLeadService creates a new lead service.
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade, userRepo portsrepo.UserReader) portssvc.LeadSvcFacade {
	return &leadService{
		leadRepo: leadRepo,
		userRepo: userRepo,
	}
}

var _ portssvc.LeadSvcFacade = (*leadService)(nil)

// CreateLead persists a new lead in new status.
func (s *leadService) CreateLead(ctx context.Context, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error) {
	if _, err := requireRole(ctx, s.userRepo, creatorUserID, domain.RoleRep); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lead := domain.Lead{
		LeadID:           uuid.NewString(),
		CompanyName:      req.CompanyName,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Address:          req.Address,
		Industry:         req.Industry,
		Source:           req.Source,
		Status:           domain.LeadNew,
		EstimatedRevenue: req.EstimatedRevenue,
		Currency:         req.Currency,
		LeadDate:         now,
		NextFollowUp:     req.NextFollowUp,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.leadRepo.SaveLead(ctx, lead); err != nil {
		s.LogError(ctx, err, "Failed to save lead", "company", req.CompanyName)
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	s.LogInfo(ctx, "Lead created", "lead_id", lead.LeadID, "company", lead.CompanyName)
	return &lead, nil
}

// UpdateLeadStatus moves a lead along the pipeline.
func (s *leadService) UpdateLeadStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest, requestingUserID string) (*domain.Lead, error) {
	if _, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleRep); err != nil {
		return nil, err
	}

	target := domain.LeadStatus(req.Status)
	switch target {
	case domain.LeadNew, domain.LeadContacted, domain.LeadQualified, domain.LeadProposal,
		domain.LeadNegotiation, domain.LeadClosedWon, domain.LeadClosedLost:
	default:
		return nil, fmt.Errorf("%w: unknown lead status %q", apperrors.ErrValidation, req.Status)
	}

	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}

	if !lead.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: lead cannot move from %s to %s", apperrors.ErrValidation, lead.Status, target)
	}

	lead.Status = target
	lead.LastUpdatedAt = time.Now().UTC()
	lead.LastUpdatedBy = requestingUserID

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		s.LogError(ctx, err, "Failed to update lead status", "lead_id", leadID)
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	s.LogInfo(ctx, "Lead status updated", "lead_id", leadID, "status", string(target))
	return lead, nil
}

// GetLeadByID retrieves a specific lead.
func (s *leadService) GetLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}
	return lead, nil
}

// ListLeads retrieves a paginated list of leads.
func (s *leadService) ListLeads(ctx context.Context, params dto.ListLeadsParams, requestingUserID string) (*dto.ListLeadsResponse, error) {
	var status *domain.LeadStatus
	if params.Status != nil {
		candidate := domain.LeadStatus(*params.Status)
		status = &candidate
	}

	var createdBy *string
	if params.Mine {
		createdBy = &requestingUserID
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultLeadPageSize
	}

	leads, nextToken, err := s.leadRepo.ListLeads(ctx, createdBy, status, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return &dto.ListLeadsResponse{
		Leads:     dto.ToLeadResponses(leads),
		NextToken: nextToken,
	}, nil
}
