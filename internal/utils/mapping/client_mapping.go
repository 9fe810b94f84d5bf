package mapping

import (
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/models"
)

// ToModelClient converts a domain client to its persistence model.
func ToModelClient(c domain.Client) models.Client {
	return models.Client{
		ClientID:      c.ClientID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Industry:      c.Industry,
		Notes:         c.Notes,
		AuditFields:   ToModelAuditFields(c.AuditFields),
	}
}

// ToDomainClient converts a persistence client to the domain form.
func ToDomainClient(c models.Client) domain.Client {
	return domain.Client{
		ClientID:      c.ClientID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Industry:      c.Industry,
		Notes:         c.Notes,
		AuditFields:   ToDomainAuditFields(c.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of persistence clients.
func ToDomainClientSlice(cs []models.Client) []domain.Client {
	result := make([]domain.Client, len(cs))
	for i, c := range cs {
		result[i] = ToDomainClient(c)
	}
	return result
}
