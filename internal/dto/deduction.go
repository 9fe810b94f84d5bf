package dto

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDeductionRequest defines the payload for creating a deduction rule.
type CreateDeductionRequest struct {
	Label string `json:"label" binding:"required"`
	// Pointer so an explicit zero-percent rule passes the required check.
	Percentage              *decimal.Decimal `json:"percentage" binding:"required"`
	AppliesBeforeCommission bool             `json:"appliesBeforeCommission"`
	SortOrder               int              `json:"sortOrder"`
}

// UpdateDeductionRequest defines the payload for updating a deduction rule.
// Nil fields are left unchanged.
type UpdateDeductionRequest struct {
	Label                   *string          `json:"label,omitempty"`
	Percentage              *decimal.Decimal `json:"percentage,omitempty"`
	AppliesBeforeCommission *bool            `json:"appliesBeforeCommission,omitempty"`
	IsActive                *bool            `json:"isActive,omitempty"`
	SortOrder               *int             `json:"sortOrder,omitempty"`
}

// DeductionResponse defines the structure for API responses containing deduction rules.
type DeductionResponse struct {
	DeductionID             string          `json:"deductionID"`
	Label                   string          `json:"label"`
	Percentage              decimal.Decimal `json:"percentage"`
	AppliesBeforeCommission bool            `json:"appliesBeforeCommission"`
	IsActive                bool            `json:"isActive"`
	SortOrder               int             `json:"sortOrder"`
}

// ToDeductionResponse converts a domain.Deduction to DeductionResponse DTO.
func ToDeductionResponse(d *domain.Deduction) DeductionResponse {
	return DeductionResponse{
		DeductionID:             d.DeductionID,
		Label:                   d.Label,
		Percentage:              d.Percentage,
		AppliesBeforeCommission: d.AppliesBeforeCommission,
		IsActive:                d.IsActive,
		SortOrder:               d.SortOrder,
	}
}

// ToDeductionResponses converts a slice of domain deduction rules.
func ToDeductionResponses(ds []domain.Deduction) []DeductionResponse {
	result := make([]DeductionResponse, len(ds))
	for i := range ds {
		result[i] = ToDeductionResponse(&ds[i])
	}
	return result
}
