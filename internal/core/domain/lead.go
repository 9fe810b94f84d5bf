package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus tracks a lead through the sales pipeline.
type LeadStatus string

const (
	LeadNew         LeadStatus = "new"
	LeadContacted   LeadStatus = "contacted"
	LeadQualified   LeadStatus = "qualified"
	LeadProposal    LeadStatus = "proposal"
	LeadNegotiation LeadStatus = "negotiation"
	LeadClosedWon   LeadStatus = "closed_won"
	LeadClosedLost  LeadStatus = "closed_lost"
)

// leadTransitions enumerates the allowed status moves. Closed statuses are terminal.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadNew:         {LeadContacted, LeadQualified, LeadClosedLost},
	LeadContacted:   {LeadQualified, LeadProposal, LeadClosedLost},
	LeadQualified:   {LeadProposal, LeadNegotiation, LeadClosedLost},
	LeadProposal:    {LeadNegotiation, LeadClosedWon, LeadClosedLost},
	LeadNegotiation: {LeadClosedWon, LeadClosedLost},
	LeadClosedWon:   {},
	LeadClosedLost:  {},
}

// CanTransitionTo reports whether moving from s to target is a valid pipeline step.
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	for _, next := range leadTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Lead represents a potential sale sourced from a visit or entered directly.
type Lead struct {
	LeadID           string           `json:"leadID"` // Primary Key (e.g., UUID)
	CompanyName      string           `json:"companyName"`
	ContactName      string           `json:"contactName"`
	ContactEmail     *string          `json:"contactEmail,omitempty"`
	ContactPhone     string           `json:"contactPhone"`
	Address          *string          `json:"address,omitempty"`
	Industry         *string          `json:"industry,omitempty"`
	Source           string           `json:"source"` // e.g. "Visit", "Referral"
	Status           LeadStatus       `json:"status"`
	EstimatedRevenue *decimal.Decimal `json:"estimatedRevenue,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
	LeadDate         time.Time        `json:"leadDate"`
	NextFollowUp     *time.Time       `json:"nextFollowUp,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	AuditFields
}
