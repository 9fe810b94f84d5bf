package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lead is the persistence model for the leads table.
type Lead struct {
	LeadID           string           `json:"leadID"`
	CompanyName      string           `json:"companyName"`
	ContactName      string           `json:"contactName"`
	ContactEmail     *string          `json:"contactEmail,omitempty"`
	ContactPhone     string           `json:"contactPhone"`
	Address          *string          `json:"address,omitempty"`
	Industry         *string          `json:"industry,omitempty"`
	Source           string           `json:"source"`
	Status           string           `json:"status"`
	EstimatedRevenue *decimal.Decimal `json:"estimatedRevenue,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
	LeadDate         time.Time        `json:"leadDate"`
	NextFollowUp     *time.Time       `json:"nextFollowUp,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	AuditFields
}
