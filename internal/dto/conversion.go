package dto

import (
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitConversionRequest defines the payload for recording a new conversion.
type SubmitConversionRequest struct {
	LeadID         string           `json:"leadID" binding:"required"`
	RepID          string           `json:"repID,omitempty"` // Defaults to the submitting actor
	RevenueAmount  decimal.Decimal  `json:"revenueAmount" binding:"required"`
	Currency       string           `json:"currency,omitempty" binding:"omitempty,currencycode"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty"` // Defaults to the rep's configured rate
	ConversionDate *time.Time       `json:"conversionDate,omitempty"` // Defaults to today
	Notes          string           `json:"notes,omitempty"`
}

// ConvertLeadRequest defines the payload for converting a lead into a
// conversion. The lead ID comes from the URL path.
type ConvertLeadRequest struct {
	RepID          string           `json:"repID,omitempty"`
	RevenueAmount  decimal.Decimal  `json:"revenueAmount" binding:"required"`
	Currency       string           `json:"currency,omitempty" binding:"omitempty,currencycode"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty"`
	ConversionDate *time.Time       `json:"conversionDate,omitempty"`
	Notes          string           `json:"notes,omitempty"`
}

// RejectConversionRequest defines the payload for rejecting a conversion.
type RejectConversionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListConversionsParams holds query parameters for listing conversions.
type ListConversionsParams struct {
	Status    *string    `form:"status"`
	RepID     *string    `form:"repID"`
	DateFrom  *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo    *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit     int        `form:"limit"`
	NextToken *string    `form:"nextToken"`
}

// AppliedDeductionResponse is one element of a conversion's deduction trail.
type AppliedDeductionResponse struct {
	Label            string          `json:"label"`
	Percentage       decimal.Decimal `json:"percentage"`
	Amount           decimal.Decimal `json:"amount"`
	BeforeCommission bool            `json:"beforeCommission"`
}

// ConversionResponse defines the structure for API responses containing conversion details.
type ConversionResponse struct {
	ConversionID         string                     `json:"conversionID"`
	LeadID               string                     `json:"leadID"`
	RepID                string                     `json:"repID"`
	ConversionDate       time.Time                  `json:"conversionDate"`
	RevenueAmount        decimal.Decimal            `json:"revenueAmount"`
	Currency             string                     `json:"currency"`
	CommissionRate       *decimal.Decimal           `json:"commissionRate,omitempty"`
	CommissionableAmount *decimal.Decimal           `json:"commissionableAmount,omitempty"`
	CommissionAmount     *decimal.Decimal           `json:"commissionAmount,omitempty"`
	DeductionsApplied    []AppliedDeductionResponse `json:"deductionsApplied,omitempty"`
	Status               string                     `json:"status"`
	SubmittedBy          string                     `json:"submittedBy"`
	SubmittedAt          time.Time                  `json:"submittedAt"`
	RecommendedBy        *string                    `json:"recommendedBy,omitempty"`
	RecommendedAt        *time.Time                 `json:"recommendedAt,omitempty"`
	ApprovedBy           *string                    `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time                 `json:"approvedAt,omitempty"`
	RejectionReason      *string                    `json:"rejectionReason,omitempty"`
	Notes                string                     `json:"notes,omitempty"`
	Version              int64                      `json:"version"`
}

// ListConversionsResponse wraps a page of conversions with the next page token.
type ListConversionsResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
	NextToken   *string              `json:"nextToken,omitempty"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO.
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	var trail []AppliedDeductionResponse
	if len(c.DeductionsApplied) > 0 {
		trail = make([]AppliedDeductionResponse, len(c.DeductionsApplied))
		for i, d := range c.DeductionsApplied {
			trail[i] = AppliedDeductionResponse{
				Label:            d.Label,
				Percentage:       d.Percentage,
				Amount:           d.Amount,
				BeforeCommission: d.BeforeCommission,
			}
		}
	}
	return ConversionResponse{
		ConversionID:         c.ConversionID,
		LeadID:               c.LeadID,
		RepID:                c.RepID,
		ConversionDate:       c.ConversionDate,
		RevenueAmount:        c.RevenueAmount,
		Currency:             c.Currency,
		CommissionRate:       c.CommissionRate,
		CommissionableAmount: c.CommissionableAmount,
		CommissionAmount:     c.CommissionAmount,
		DeductionsApplied:    trail,
		Status:               string(c.Status),
		SubmittedBy:          c.SubmittedBy,
		SubmittedAt:          c.SubmittedAt,
		RecommendedBy:        c.RecommendedBy,
		RecommendedAt:        c.RecommendedAt,
		ApprovedBy:           c.ApprovedBy,
		ApprovedAt:           c.ApprovedAt,
		RejectionReason:      c.RejectionReason,
		Notes:                c.Notes,
		Version:              c.Version,
	}
}

// ToConversionResponses converts a slice of domain conversions.
func ToConversionResponses(cs []domain.Conversion) []ConversionResponse {
	result := make([]ConversionResponse, len(cs))
	for i := range cs {
		result[i] = ToConversionResponse(&cs[i])
	}
	return result
}
