package repositories

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// DeductionReader defines read operations for deduction rules.
type DeductionReader interface {
	// FindDeductionByID retrieves a specific deduction rule.
	FindDeductionByID(ctx context.Context, deductionID string) (*domain.Deduction, error)

	// ListDeductions retrieves all deduction rules, optionally including inactive ones.
	ListDeductions(ctx context.Context, includeInactive bool) ([]domain.Deduction, error)

	// ListActiveDeductions retrieves the active rule set in its deterministic
	// application order (sort_order, then created_at). This is the set a
	// conversion snapshots at approval time.
	ListActiveDeductions(ctx context.Context) ([]domain.Deduction, error)
}

// DeductionWriter defines write operations for deduction rules.
type DeductionWriter interface {
	// SaveDeduction inserts a new deduction rule.
	SaveDeduction(ctx context.Context, deduction domain.Deduction) error

	// UpdateDeduction updates an existing rule's label, percentage, timing flag,
	// active flag and sort order.
	UpdateDeduction(ctx context.Context, deduction domain.Deduction) error
}

// DeductionRepositoryFacade combines all deduction-related repository interfaces.
type DeductionRepositoryFacade interface {
	DeductionReader
	DeductionWriter
}
