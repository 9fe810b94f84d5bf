package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the persistence model for the goals table.
type Goal struct {
	GoalID       string          `json:"goalID"`
	UserID       string          `json:"userID"`
	GoalType     string          `json:"goalType"`
	TargetValue  decimal.Decimal `json:"targetValue"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Currency     *string         `json:"currency,omitempty"`
	PeriodStart  time.Time       `json:"periodStart"`
	PeriodEnd    time.Time       `json:"periodEnd"`
	Description  string          `json:"description,omitempty"`
	AuditFields
}
