package dto

import (
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeadRequest defines the payload for creating a lead.
type CreateLeadRequest struct {
	CompanyName      string           `json:"companyName" binding:"required"`
	ContactName      string           `json:"contactName" binding:"required"`
	ContactEmail     *string          `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone     string           `json:"contactPhone"`
	Address          *string          `json:"address,omitempty"`
	Industry         *string          `json:"industry,omitempty"`
	Source           string           `json:"source" binding:"required"`
	EstimatedRevenue *decimal.Decimal `json:"estimatedRevenue,omitempty"`
	Currency         *string          `json:"currency,omitempty" binding:"omitempty,currencycode"`
	NextFollowUp     *time.Time       `json:"nextFollowUp,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}

// UpdateLeadStatusRequest defines the payload for moving a lead through the pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListLeadsParams holds query parameters for listing leads.
type ListLeadsParams struct {
	Status    *string `form:"status"`
	Mine      bool    `form:"mine"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// LeadResponse defines the structure for API responses containing lead details.
type LeadResponse struct {
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
	CreatedBy        string           `json:"createdBy"`
}

// ListLeadsResponse wraps a page of leads with the next page token.
type ListLeadsResponse struct {
	Leads     []LeadResponse `json:"leads"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToLeadResponse converts a domain.Lead to LeadResponse DTO.
func ToLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		LeadID:           l.LeadID,
		CompanyName:      l.CompanyName,
		ContactName:      l.ContactName,
		ContactEmail:     l.ContactEmail,
		ContactPhone:     l.ContactPhone,
		Address:          l.Address,
		Industry:         l.Industry,
		Source:           l.Source,
		Status:           string(l.Status),
		EstimatedRevenue: l.EstimatedRevenue,
		Currency:         l.Currency,
		LeadDate:         l.LeadDate,
		NextFollowUp:     l.NextFollowUp,
		Notes:            l.Notes,
		CreatedBy:        l.CreatedBy,
	}
}

// ToLeadResponses converts a slice of domain leads.
func ToLeadResponses(ls []domain.Lead) []LeadResponse {
	result := make([]LeadResponse, len(ls))
	for i := range ls {
		result[i] = ToLeadResponse(&ls[i])
	}
	return result
}
