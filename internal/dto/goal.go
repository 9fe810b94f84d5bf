package dto

import (
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the payload for creating a goal.
type CreateGoalRequest struct {
	GoalType    string          `json:"goalType" binding:"required"`
	TargetValue decimal.Decimal `json:"targetValue" binding:"required"`
	Currency    *string         `json:"currency,omitempty" binding:"omitempty,currencycode"`
	PeriodStart time.Time       `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time       `json:"periodEnd" binding:"required"`
	Description string          `json:"description,omitempty"`
}

// GoalResponse defines the structure for API responses containing goal details.
type GoalResponse struct {
	GoalID       string          `json:"goalID"`
	UserID       string          `json:"userID"`
	GoalType     string          `json:"goalType"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Currency     *string         `json:"currency,omitempty"`
	PeriodStart  time.Time       `json:"periodStart"`
	PeriodEnd    time.Time       `json:"periodEnd"`
	Description  string          `json:"description,omitempty"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:       g.GoalID,
		UserID:       g.UserID,
		GoalType:     g.GoalType,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Currency:     g.Currency,
		PeriodStart:  g.PeriodStart,
		PeriodEnd:    g.PeriodEnd,
		Description:  g.Description,
	}
}

// ToGoalResponses converts a slice of domain goals.
func ToGoalResponses(gs []domain.Goal) []GoalResponse {
	result := make([]GoalResponse, len(gs))
	for i := range gs {
		result[i] = ToGoalResponse(&gs[i])
	}
	return result
}
