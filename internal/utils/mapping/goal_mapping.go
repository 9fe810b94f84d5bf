package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelGoal converts a domain goal to its persistence model.
func ToModelGoal(g domain.Goal) models.Goal {
	return models.Goal{
		GoalID:       g.GoalID,
		UserID:       g.UserID,
		GoalType:     g.GoalType,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Currency:     g.Currency,
		PeriodStart:  g.PeriodStart,
		PeriodEnd:    g.PeriodEnd,
		Description:  g.Description,
		AuditFields:  ToModelAuditFields(g.AuditFields),
	}
}

// ToDomainGoal converts a persistence goal to the domain form.
func ToDomainGoal(g models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       g.GoalID,
		UserID:       g.UserID,
		GoalType:     g.GoalType,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Currency:     g.Currency,
		PeriodStart:  g.PeriodStart,
		PeriodEnd:    g.PeriodEnd,
		Description:  g.Description,
		AuditFields:  ToDomainAuditFields(g.AuditFields),
	}
}

// ToDomainGoalSlice converts a slice of persistence goals.
func ToDomainGoalSlice(gs []models.Goal) []domain.Goal {
	result := make([]domain.Goal, len(gs))
	for i, g := range gs {
		result[i] = ToDomainGoal(g)
	}
	return result
}
