package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelVisit converts a domain visit to its persistence model.
func ToModelVisit(v domain.Visit) models.Visit {
	return models.Visit{
		VisitID:          v.VisitID,
		RepID:            v.RepID,
		VisitDate:        v.VisitDate,
		VisitTime:        v.VisitTime,
		CompanyName:      v.CompanyName,
		ContactPerson:    v.ContactPerson,
		ContactEmail:     v.ContactEmail,
		VisitType:        string(v.VisitType),
		DurationMinutes:  v.DurationMinutes,
		Outcome:          v.Outcome,
		Notes:            v.Notes,
		LeadGenerated:    v.LeadGenerated,
		LeadID:           v.LeadID,
		FollowUpRequired: v.FollowUpRequired,
		FollowUpDate:     v.FollowUpDate,
		Status:           string(v.Status),
		AuditFields:      ToModelAuditFields(v.AuditFields),
	}
}

// ToDomainVisit converts a persistence visit to the domain form.
func ToDomainVisit(v models.Visit) domain.Visit {
	return domain.Visit{
		VisitID:          v.VisitID,
		RepID:            v.RepID,
		VisitDate:        v.VisitDate,
		VisitTime:        v.VisitTime,
		CompanyName:      v.CompanyName,
		ContactPerson:    v.ContactPerson,
		ContactEmail:     v.ContactEmail,
		VisitType:        domain.VisitType(v.VisitType),
		DurationMinutes:  v.DurationMinutes,
		Outcome:          v.Outcome,
		Notes:            v.Notes,
		LeadGenerated:    v.LeadGenerated,
		LeadID:           v.LeadID,
		FollowUpRequired: v.FollowUpRequired,
		FollowUpDate:     v.FollowUpDate,
		Status:           domain.VisitStatus(v.Status),
		AuditFields:      ToDomainAuditFields(v.AuditFields),
	}
}

// ToDomainVisitSlice converts a slice of persistence visits.
func ToDomainVisitSlice(vs []models.Visit) []domain.Visit {
	result := make([]domain.Visit, len(vs))
	for i, v := range vs {
		result[i] = ToDomainVisit(v)
	}
	return result
}
