package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelConversion converts a domain conversion to its persistence model.
func ToModelConversion(c domain.Conversion) models.Conversion {
	return models.Conversion{
		ConversionID:         c.ConversionID,
		LeadID:               c.LeadID,
		RepID:                c.RepID,
		ConversionDate:       c.ConversionDate,
		RevenueAmount:        c.RevenueAmount,
		Currency:             c.Currency,
		CommissionRate:       c.CommissionRate,
		CommissionableAmount: c.CommissionableAmount,
		CommissionAmount:     c.CommissionAmount,
		DeductionsApplied:    ToModelAppliedDeductions(c.DeductionsApplied),
		Status:               string(c.Status),
		SubmittedBy:          c.SubmittedBy,
		SubmittedAt:          c.SubmittedAt,
		RecommendedBy:        c.RecommendedBy,
		RecommendedAt:        c.RecommendedAt,
		ApprovedBy:           c.ApprovedBy,
		ApprovedAt:           c.ApprovedAt,
		RejectionReason:      c.RejectionReason,
		Notes:                c.Notes,
		Version:              c.Version,
		AuditFields:          ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainConversion converts a persistence conversion to the domain form.
func ToDomainConversion(c models.Conversion) domain.Conversion {
	return domain.Conversion{
		ConversionID:         c.ConversionID,
		LeadID:               c.LeadID,
		RepID:                c.RepID,
		ConversionDate:       c.ConversionDate,
		RevenueAmount:        c.RevenueAmount,
		Currency:             c.Currency,
		CommissionRate:       c.CommissionRate,
		CommissionableAmount: c.CommissionableAmount,
		CommissionAmount:     c.CommissionAmount,
		DeductionsApplied:    ToDomainAppliedDeductions(c.DeductionsApplied),
		Status:               domain.ConversionStatus(c.Status),
		SubmittedBy:          c.SubmittedBy,
		SubmittedAt:          c.SubmittedAt,
		RecommendedBy:        c.RecommendedBy,
		RecommendedAt:        c.RecommendedAt,
		ApprovedBy:           c.ApprovedBy,
		ApprovedAt:           c.ApprovedAt,
		RejectionReason:      c.RejectionReason,
		Notes:                c.Notes,
		Version:              c.Version,
		AuditFields:          ToDomainAuditFields(c.AuditFields),
	}
}

// ToDomainConversionSlice converts a slice of persistence conversions.
func ToDomainConversionSlice(cs []models.Conversion) []domain.Conversion {
	result := make([]domain.Conversion, len(cs))
	for i, c := range cs {
		result[i] = ToDomainConversion(c)
	}
	return result
}

// ToModelAppliedDeductions converts a deduction trail to the JSONB model form.
func ToModelAppliedDeductions(trail []domain.AppliedDeduction) []models.AppliedDeduction {
	if trail == nil {
		return nil
	}
	result := make([]models.AppliedDeduction, len(trail))
	for i, d := range trail {
		result[i] = models.AppliedDeduction{
			Label:            d.Label,
			Percentage:       d.Percentage,
			Amount:           d.Amount,
			BeforeCommission: d.BeforeCommission,
		}
	}
	return result
}

// ToDomainAppliedDeductions converts a JSONB deduction trail to the domain form.
func ToDomainAppliedDeductions(trail []models.AppliedDeduction) []domain.AppliedDeduction {
	if trail == nil {
		return nil
	}
	result := make([]domain.AppliedDeduction, len(trail))
	for i, d := range trail {
		result[i] = domain.AppliedDeduction{
			Label:            d.Label,
			Percentage:       d.Percentage,
			Amount:           d.Amount,
			BeforeCommission: d.BeforeCommission,
		}
	}
	return result
}
