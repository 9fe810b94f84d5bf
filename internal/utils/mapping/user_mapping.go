package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToDomainUser converts a persistence user to the domain form. The password
// hash is intentionally not carried over.
func ToDomainUser(u models.User) domain.User {
	return domain.User{
		UserID:                u.UserID,
		Name:                  u.Name,
		Email:                 u.Email,
		Role:                  domain.UserRole(u.Role),
		ManagerID:             u.ManagerID,
		DefaultCommissionRate: u.DefaultCommissionRate,
		PreferredCurrency:     u.PreferredCurrency,
		IsActive:              u.IsActive,
		AuditFields:           ToDomainAuditFields(u.AuditFields),
		DeletedAt:             u.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of persistence users.
func ToDomainUserSlice(us []models.User) []domain.User {
	result := make([]domain.User, len(us))
	for i, u := range us {
		result[i] = ToDomainUser(u)
	}
	return result
}
