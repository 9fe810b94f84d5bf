package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionStatus indicates where a conversion sits in the approval workflow.
type ConversionStatus string

const (
	ConversionPending     ConversionStatus = "pending"
	ConversionRecommended ConversionStatus = "recommended"
	ConversionApproved    ConversionStatus = "approved"
	ConversionRejected    ConversionStatus = "rejected"
)

// IsTerminal reports whether no further workflow transitions are allowed.
func (s ConversionStatus) IsTerminal() bool {
	return s == ConversionApproved || s == ConversionRejected
}

// AppliedDeduction is an immutable snapshot of one deduction as it was applied
// to a conversion at approval time. Historical commission math must never be
// affected by later edits to the live deduction rules.
type AppliedDeduction struct {
	Label            string          `json:"label"`
	Percentage       decimal.Decimal `json:"percentage"`
	Amount           decimal.Decimal `json:"amount"`
	BeforeCommission bool            `json:"beforeCommission"`
}

// Conversion is a recorded sale linked to a lead, tracked through the approval
// workflow to a final commission amount.
type Conversion struct {
	ConversionID   string          `json:"conversionID"` // Primary Key (e.g., UUID)
	LeadID         string          `json:"leadID"`       // FK -> leads.lead_id
	RepID          string          `json:"repID"`        // FK -> users.user_id, the commission earner
	ConversionDate time.Time       `json:"conversionDate"`
	RevenueAmount  decimal.Decimal `json:"revenueAmount"`
	Currency       string          `json:"currency"` // ISO-4217 code, defaulted to the base currency on submit

	// Derived fields, set if and only if Status is approved.
	CommissionRate       *decimal.Decimal   `json:"commissionRate,omitempty"` // Percentage 0-100
	CommissionableAmount *decimal.Decimal   `json:"commissionableAmount,omitempty"`
	CommissionAmount     *decimal.Decimal   `json:"commissionAmount,omitempty"`
	DeductionsApplied    []AppliedDeduction `json:"deductionsApplied,omitempty"`

	Status          ConversionStatus `json:"status"`
	SubmittedBy     string           `json:"submittedBy"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	RecommendedBy   *string          `json:"recommendedBy,omitempty"`
	RecommendedAt   *time.Time       `json:"recommendedAt,omitempty"`
	ApprovedBy      *string          `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time       `json:"approvedAt,omitempty"`
	RejectionReason *string          `json:"rejectionReason,omitempty"` // Required when Status is rejected
	Notes           string           `json:"notes,omitempty"`

	// Version is the optimistic concurrency token. Every workflow write carries
	// the version it read; a stale write affects zero rows and maps to ErrConflict.
	Version int64 `json:"version"`

	AuditFields
}
