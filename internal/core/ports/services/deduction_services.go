package services

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
)

// DeductionReaderSvc defines read operations for deduction rules
type DeductionReaderSvc interface {
	// GetDeductionByID retrieves a specific deduction rule.
	GetDeductionByID(ctx context.Context, deductionID string) (*domain.Deduction, error)

	// ListDeductions retrieves deduction rules, optionally including inactive ones.
	ListDeductions(ctx context.Context, includeInactive bool) ([]domain.Deduction, error)

	// ListActiveDeductions retrieves the active rule set in application order.
	ListActiveDeductions(ctx context.Context) ([]domain.Deduction, error)
}

// DeductionWriterSvc defines write operations for deduction rules. All writes
// require admin authority and are rejected when the resulting active set of
// before-commission percentages would exceed 100.
type DeductionWriterSvc interface {
	// CreateDeduction persists a new deduction rule.
	CreateDeduction(ctx context.Context, req dto.CreateDeductionRequest, creatorUserID string) (*domain.Deduction, error)

	// UpdateDeduction updates an existing rule. Approved conversions keep the
	// snapshot taken at their approval and are unaffected.
	UpdateDeduction(ctx context.Context, deductionID string, req dto.UpdateDeductionRequest, requestingUserID string) (*domain.Deduction, error)

	// DeactivateDeduction marks a rule inactive so future approvals skip it.
	DeactivateDeduction(ctx context.Context, deductionID string, requestingUserID string) error
}

// DeductionSvcFacade combines all deduction-related service interfaces
type DeductionSvcFacade interface {
	DeductionReaderSvc
	DeductionWriterSvc
}
