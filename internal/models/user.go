package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the persistence model for a user profile, including the password
// hash which never leaves the repository/auth layer.
type User struct {
	UserID                string           `json:"userID"`
	Name                  string           `json:"name"`
	Email                 string           `json:"email"`
	PasswordHash          string           `json:"-"`
	Role                  string           `json:"role"`
	ManagerID             *string          `json:"managerID,omitempty"`
	DefaultCommissionRate *decimal.Decimal `json:"defaultCommissionRate,omitempty"`
	PreferredCurrency     *string          `json:"preferredCurrency,omitempty"`
	IsActive              bool             `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
