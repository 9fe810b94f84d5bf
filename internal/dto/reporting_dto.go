package dto

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryParams holds query parameters for the period summary endpoint.
// Period is one of day/week/month; Scope is individual/team/organization.
type SummaryParams struct {
	Period string `form:"period" binding:"omitempty,oneof=day week month"`
	Scope  string `form:"scope" binding:"omitempty,oneof=individual team organization"`
}

// PeriodSummaryResponse is the API shape of a period summary.
type PeriodSummaryResponse struct {
	PeriodStart      string          `json:"periodStart"`
	PeriodEnd        string          `json:"periodEnd"`
	Scope            string          `json:"scope"`
	TotalVisits      int             `json:"totalVisits"`
	TotalLeads       int             `json:"totalLeads"`
	TotalConversions int             `json:"totalConversions"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalCommission  decimal.Decimal `json:"totalCommission"`
	BaseCurrency     string          `json:"baseCurrency"`
	DegradedRows     int             `json:"degradedRows,omitempty"`
}

// ToPeriodSummaryResponse converts a domain.PeriodSummary to its API shape.
func ToPeriodSummaryResponse(s *domain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		PeriodStart:      s.Period.Start.Format("2006-01-02"),
		PeriodEnd:        s.Period.End.Format("2006-01-02"),
		Scope:            string(s.Scope),
		TotalVisits:      s.TotalVisits,
		TotalLeads:       s.TotalLeads,
		TotalConversions: s.TotalConversions,
		TotalRevenue:     s.TotalRevenue,
		TotalCommission:  s.TotalCommission,
		BaseCurrency:     s.BaseCurrency,
		DegradedRows:     s.DegradedRows,
	}
}
