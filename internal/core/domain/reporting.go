package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportScope selects whose activity a summary covers.
type ReportScope string

const (
	ScopeIndividual   ReportScope = "individual"
	ScopeTeam         ReportScope = "team"
	ScopeOrganization ReportScope = "organization"
)

// ReportPeriod is a caller-supplied half-open time window [Start, End).
type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PeriodSummary aggregates activity over a period. Revenue and commission
// totals cover approved conversions only, normalized into BaseCurrency;
// count metrics cover all statuses.
type PeriodSummary struct {
	Period           ReportPeriod    `json:"period"`
	Scope            ReportScope     `json:"scope"`
	TotalVisits      int             `json:"totalVisits"`
	TotalLeads       int             `json:"totalLeads"`
	TotalConversions int             `json:"totalConversions"` // Approved only
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalCommission  decimal.Decimal `json:"totalCommission"`
	BaseCurrency     string          `json:"baseCurrency"`
	// DegradedRows counts approved conversions whose currency could not be
	// normalized; their raw amounts are included in the totals unconverted.
	DegradedRows int `json:"degradedRows"`
}

// RepPerformanceRow summarizes one rep inside a team or organization report.
type RepPerformanceRow struct {
	RepID           string          `json:"repID"`
	RepName         string          `json:"repName"`
	Visits          int             `json:"visits"`
	Leads           int             `json:"leads"`
	Conversions     int             `json:"conversions"`
	Revenue         decimal.Decimal `json:"revenue"`
	CommissionOwed  decimal.Decimal `json:"commissionOwed"`
	ConversionRatio decimal.Decimal `json:"conversionRatio"` // Conversions / Leads, zero when no leads
}
