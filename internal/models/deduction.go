package models

import "github.com/shopspring/decimal"

// Deduction is the persistence model for the deductions table.
type Deduction struct {
	DeductionID             string          `json:"deductionID"`
	Label                   string          `json:"label"`
	Percentage              decimal.Decimal `json:"percentage"`
	AppliesBeforeCommission bool            `json:"appliesBeforeCommission"`
	IsActive                bool            `json:"isActive"`
	SortOrder               int             `json:"sortOrder"`
	AuditFields
}
