package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppliedDeduction is the JSONB element stored in conversions.deductions_applied.
type AppliedDeduction struct {
	Label            string          `json:"label"`
	Percentage       decimal.Decimal `json:"percentage"`
	Amount           decimal.Decimal `json:"amount"`
	BeforeCommission bool            `json:"beforeCommission"`
}

// Conversion is the persistence model for the conversions table.
type Conversion struct {
	ConversionID         string             `json:"conversionID"`
	LeadID               string             `json:"leadID"`
	RepID                string             `json:"repID"`
	ConversionDate       time.Time          `json:"conversionDate"`
	RevenueAmount        decimal.Decimal    `json:"revenueAmount"`
	Currency             string             `json:"currency"`
	CommissionRate       *decimal.Decimal   `json:"commissionRate,omitempty"`
	CommissionableAmount *decimal.Decimal   `json:"commissionableAmount,omitempty"`
	CommissionAmount     *decimal.Decimal   `json:"commissionAmount,omitempty"`
	DeductionsApplied    []AppliedDeduction `json:"deductionsApplied,omitempty"`
	Status               string             `json:"status"`
	SubmittedBy          string             `json:"submittedBy"`
	SubmittedAt          time.Time          `json:"submittedAt"`
	RecommendedBy        *string            `json:"recommendedBy,omitempty"`
	RecommendedAt        *time.Time         `json:"recommendedAt,omitempty"`
	ApprovedBy           *string            `json:"approvedBy,omitempty"`
	ApprovedAt           *time.Time         `json:"approvedAt,omitempty"`
	RejectionReason      *string            `json:"rejectionReason,omitempty"`
	Notes                string             `json:"notes,omitempty"`
	Version              int64              `json:"version"`
	AuditFields
}
