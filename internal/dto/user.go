package dto

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateUserRequest defines the payload for registering a user.
type CreateUserRequest struct {
	Name                  string           `json:"name" binding:"required"`
	Email                 string           `json:"email" binding:"required,email"`
	Password              string           `json:"password" binding:"required,min=8"`
	Role                  string           `json:"role" binding:"required,oneof=rep manager director admin"`
	ManagerID             *string          `json:"managerID,omitempty"`
	DefaultCommissionRate *decimal.Decimal `json:"defaultCommissionRate,omitempty"`
	PreferredCurrency     *string          `json:"preferredCurrency,omitempty" binding:"omitempty,currencycode"`
}

// UpdateUserRequest defines the payload for updating a user profile.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name                  *string          `json:"name,omitempty"`
	Role                  *string          `json:"role,omitempty" binding:"omitempty,oneof=rep manager director admin"`
	ManagerID             *string          `json:"managerID,omitempty"`
	DefaultCommissionRate *decimal.Decimal `json:"defaultCommissionRate,omitempty"`
	PreferredCurrency     *string          `json:"preferredCurrency,omitempty" binding:"omitempty,currencycode"`
	IsActive              *bool            `json:"isActive,omitempty"`
}

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID                string           `json:"userID"`
	Name                  string           `json:"name"`
	Email                 string           `json:"email"`
	Role                  string           `json:"role"`
	ManagerID             *string          `json:"managerID,omitempty"`
	DefaultCommissionRate *decimal.Decimal `json:"defaultCommissionRate,omitempty"`
	PreferredCurrency     *string          `json:"preferredCurrency,omitempty"`
	IsActive              bool             `json:"isActive"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:                u.UserID,
		Name:                  u.Name,
		Email:                 u.Email,
		Role:                  string(u.Role),
		ManagerID:             u.ManagerID,
		DefaultCommissionRate: u.DefaultCommissionRate,
		PreferredCurrency:     u.PreferredCurrency,
		IsActive:              u.IsActive,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(us []domain.User) []UserResponse {
	result := make([]UserResponse, len(us))
	for i := range us {
		result[i] = ToUserResponse(&us[i])
	}
	return result
}
