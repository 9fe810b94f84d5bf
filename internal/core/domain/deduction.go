package domain

import "github.com/shopspring/decimal"

// Deduction is an organization-level percentage reduction applied to revenue
// before (or to commission after) the commission-rate multiplication. Rules
// have a lifecycle independent of any conversion; approvals snapshot the
// active set into the conversion's DeductionsApplied trail.
type Deduction struct {
	DeductionID             string          `json:"deductionID"` // Primary Key (e.g., UUID)
	Label                   string          `json:"label"`
	Percentage              decimal.Decimal `json:"percentage"` // 0 < p <= 100
	AppliesBeforeCommission bool            `json:"appliesBeforeCommission"`
	IsActive                bool            `json:"isActive"`
	SortOrder               int             `json:"sortOrder"` // Application order; ties broken by creation time
	AuditFields
}
