package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole defines the organization-wide role of a user.
type UserRole string

const (
	RoleRep      UserRole = "rep"
	RoleManager  UserRole = "manager"
	RoleDirector UserRole = "director"
	RoleAdmin    UserRole = "admin"
)

// roleRank orders roles by authority for threshold checks.
var roleRank = map[UserRole]int{
	RoleRep:      1,
	RoleManager:  2,
	RoleDirector: 3,
	RoleAdmin:    4,
}

// AtLeast reports whether the role carries at least the authority of other.
func (r UserRole) AtLeast(other UserRole) bool {
	return roleRank[r] >= roleRank[other]
}

// User represents a sales rep, manager, director or admin profile.
type User struct {
	UserID                string           `json:"userID"` // Primary Key (e.g., UUID)
	Name                  string           `json:"name"`
	Email                 string           `json:"email"`
	Role                  UserRole         `json:"role"`
	ManagerID             *string          `json:"managerID,omitempty"`             // FK -> users.user_id, nil for top of chain
	DefaultCommissionRate *decimal.Decimal `json:"defaultCommissionRate,omitempty"` // Percentage 0-100 used when a conversion has no explicit rate
	PreferredCurrency     *string          `json:"preferredCurrency,omitempty"`     // Base currency for reporting, nil means organization default
	IsActive              bool             `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsManagerOrAbove reports whether the user holds elevated authority.
func (u User) IsManagerOrAbove() bool {
	return u.Role.AtLeast(RoleManager)
}
