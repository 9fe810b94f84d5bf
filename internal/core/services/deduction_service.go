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
	"github.com/fieldglass/salesops_backend/internal/utils/commission"
	"github.com/google/uuid"
)

// deductionService manages the organization-level deduction rule set. Rule
// edits only affect future approvals; approved conversions keep the snapshot
// taken when they were approved.
type deductionService struct {
	BaseService
	deductionRepo portsrepo.DeductionRepositoryFacade
	userRepo      portsrepo.UserReader
}

// NewDeductionService creates a new deduction service.
func NewDeductionService(deductionRepo portsrepo.DeductionRepositoryFacade, userRepo portsrepo.UserReader) portssvc.DeductionSvcFacade {
	return &deductionService{
		deductionRepo: deductionRepo,
		userRepo:      userRepo,
	}
}

var _ portssvc.DeductionSvcFacade = (*deductionService)(nil)

// GetDeductionByID retrieves a specific deduction rule.
func (s *deductionService) GetDeductionByID(ctx context.Context, deductionID string) (*domain.Deduction, error) {
	deduction, err := s.deductionRepo.FindDeductionByID(ctx, deductionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deduction: %w", err)
	}
	return deduction, nil
}

// ListDeductions retrieves deduction rules, optionally including inactive ones.
func (s *deductionService) ListDeductions(ctx context.Context, includeInactive bool) ([]domain.Deduction, error) {
	deductions, err := s.deductionRepo.ListDeductions(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	if deductions == nil {
		return []domain.Deduction{}, nil
	}
	return deductions, nil
}

// ListActiveDeductions retrieves the active rule set in application order.
func (s *deductionService) ListActiveDeductions(ctx context.Context) ([]domain.Deduction, error) {
	deductions, err := s.deductionRepo.ListActiveDeductions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deductions: %w", err)
	}
	if deductions == nil {
		return []domain.Deduction{}, nil
	}
	return deductions, nil
}

// CreateDeduction persists a new deduction rule after checking the resulting
// active set stays within bounds.
func (s *deductionService) CreateDeduction(ctx context.Context, req dto.CreateDeductionRequest, creatorUserID string) (*domain.Deduction, error) {
	if _, err := requireRole(ctx, s.userRepo, creatorUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if req.Percentage == nil {
		return nil, fmt.Errorf("%w: percentage is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	deduction := domain.Deduction{
		DeductionID:             uuid.NewString(),
		Label:                   req.Label,
		Percentage:              *req.Percentage,
		AppliesBeforeCommission: req.AppliesBeforeCommission,
		IsActive:                true,
		SortOrder:               req.SortOrder,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.validateResultingSet(ctx, deduction, nil); err != nil {
		return nil, err
	}

	if err := s.deductionRepo.SaveDeduction(ctx, deduction); err != nil {
		s.LogError(ctx, err, "Failed to create deduction", "label", req.Label)
		return nil, fmt.Errorf("failed to create deduction: %w", err)
	}

	s.LogInfo(ctx, "Deduction rule created", "deduction_id", deduction.DeductionID, "label", deduction.Label)
	return &deduction, nil
}

// UpdateDeduction updates an existing rule's fields.
func (s *deductionService) UpdateDeduction(ctx context.Context, deductionID string, req dto.UpdateDeductionRequest, requestingUserID string) (*domain.Deduction, error) {
	if _, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	deduction, err := s.deductionRepo.FindDeductionByID(ctx, deductionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find deduction for update: %w", err)
	}

	if req.Label != nil {
		deduction.Label = *req.Label
	}
	if req.Percentage != nil {
		deduction.Percentage = *req.Percentage
	}
	if req.AppliesBeforeCommission != nil {
		deduction.AppliesBeforeCommission = *req.AppliesBeforeCommission
	}
	if req.IsActive != nil {
		deduction.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		deduction.SortOrder = *req.SortOrder
	}
	deduction.LastUpdatedAt = time.Now().UTC()
	deduction.LastUpdatedBy = requestingUserID

	if deduction.IsActive {
		if err := s.validateResultingSet(ctx, *deduction, &deductionID); err != nil {
			return nil, err
		}
	}

	if err := s.deductionRepo.UpdateDeduction(ctx, *deduction); err != nil {
		s.LogError(ctx, err, "Failed to update deduction", "deduction_id", deductionID)
		return nil, fmt.Errorf("failed to update deduction: %w", err)
	}

	return deduction, nil
}

// DeactivateDeduction marks a rule inactive.
func (s *deductionService) DeactivateDeduction(ctx context.Context, deductionID string, requestingUserID string) error {
	if _, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}

	deduction, err := s.deductionRepo.FindDeductionByID(ctx, deductionID)
	if err != nil {
		return fmt.Errorf("failed to find deduction for deactivation: %w", err)
	}

	deduction.IsActive = false
	deduction.LastUpdatedAt = time.Now().UTC()
	deduction.LastUpdatedBy = requestingUserID

	if err := s.deductionRepo.UpdateDeduction(ctx, *deduction); err != nil {
		s.LogError(ctx, err, "Failed to deactivate deduction", "deduction_id", deductionID)
		return fmt.Errorf("failed to deactivate deduction: %w", err)
	}

	s.LogInfo(ctx, "Deduction rule deactivated", "deduction_id", deductionID)
	return nil
}

// validateResultingSet validates the active rule set as it would look after
// applying the proposed rule, replacing the rule with excludeID if given.
func (s *deductionService) validateResultingSet(ctx context.Context, proposed domain.Deduction, excludeID *string) error {
	active, err := s.deductionRepo.ListActiveDeductions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active deductions for validation: %w", err)
	}

	resulting := make([]domain.Deduction, 0, len(active)+1)
	for _, d := range active {
		if excludeID != nil && d.DeductionID == *excludeID {
			continue
		}
		resulting = append(resulting, d)
	}
	resulting = append(resulting, proposed)

	return commission.ValidateDeductionSet(resulting)
}
