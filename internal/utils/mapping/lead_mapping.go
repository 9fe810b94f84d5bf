package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelLead converts a domain lead to its persistence model.
func ToModelLead(l domain.Lead) models.Lead {
	return models.Lead{
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
		AuditFields:      ToModelAuditFields(l.AuditFields),
	}
}

// ToDomainLead converts a persistence lead to the domain form.
func ToDomainLead(l models.Lead) domain.Lead {
	return domain.Lead{
		LeadID:           l.LeadID,
		CompanyName:      l.CompanyName,
		ContactName:      l.ContactName,
		ContactEmail:     l.ContactEmail,
		ContactPhone:     l.ContactPhone,
		Address:          l.Address,
		Industry:         l.Industry,
		Source:           l.Source,
		Status:           domain.LeadStatus(l.Status),
		EstimatedRevenue: l.EstimatedRevenue,
		Currency:         l.Currency,
		LeadDate:         l.LeadDate,
		NextFollowUp:     l.NextFollowUp,
		Notes:            l.Notes,
		AuditFields:      ToDomainAuditFields(l.AuditFields),
	}
}

// ToDomainLeadSlice converts a slice of persistence leads.
func ToDomainLeadSlice(ls []models.Lead) []domain.Lead {
	result := make([]domain.Lead, len(ls))
	for i, l := range ls {
		result[i] = ToDomainLead(l)
	}
	return result
}
