package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a period-scoped counter owned by a user, incremented as a side
// effect of completed activity. CurrentValue never decreases.
type Goal struct {
	GoalID       string          `json:"goalID"`   // Primary Key (e.g., UUID)
	UserID       string          `json:"userID"`   // FK -> users.user_id
	GoalType     string          `json:"goalType"` // e.g. "visits", "leads", "revenue"
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Currency     *string         `json:"currency,omitempty"` // Only meaningful for revenue goals
	PeriodStart  time.Time       `json:"periodStart"`
	PeriodEnd    time.Time       `json:"periodEnd"`
	Description  string          `json:"description,omitempty"`
	AuditFields
}

// Covers reports whether the goal's period contains the given day.
func (g Goal) Covers(day time.Time) bool {
	return !day.Before(g.PeriodStart) && !day.After(g.PeriodEnd)
}
