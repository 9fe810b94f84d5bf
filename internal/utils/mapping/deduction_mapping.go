package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelDeduction converts a domain deduction rule to its persistence model.
func ToModelDeduction(d domain.Deduction) models.Deduction {
	return models.Deduction{
		DeductionID:             d.DeductionID,
		Label:                   d.Label,
		Percentage:              d.Percentage,
		AppliesBeforeCommission: d.AppliesBeforeCommission,
		IsActive:                d.IsActive,
		SortOrder:               d.SortOrder,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeduction converts a persistence deduction rule to the domain form.
func ToDomainDeduction(d models.Deduction) domain.Deduction {
	return domain.Deduction{
		DeductionID:             d.DeductionID,
		Label:                   d.Label,
		Percentage:              d.Percentage,
		AppliesBeforeCommission: d.AppliesBeforeCommission,
		IsActive:                d.IsActive,
		SortOrder:               d.SortOrder,
		AuditFields:             ToDomainAuditFields(d.AuditFields),
	}
}

// ToDomainDeductionSlice converts a slice of persistence deduction rules.
func ToDomainDeductionSlice(ds []models.Deduction) []domain.Deduction {
	result := make([]domain.Deduction, len(ds))
	for i, d := range ds {
		result[i] = ToDomainDeduction(d)
	}
	return result
}
