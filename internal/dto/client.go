package dto

import "github.com/fieldglass/salesops_backend/internal/core/domain"

// CreateClientRequest defines the payload for creating a client record.
type CreateClientRequest struct {
	CompanyName   string  `json:"companyName" binding:"required"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// ClientResponse defines the structure for API responses containing client details.
type ClientResponse struct {
	ClientID      string  `json:"clientID"`
	CompanyName   string  `json:"companyName"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	// Existing is true when the create was deduplicated against a client
	// already on file for the same company.
	Existing bool `json:"existing,omitempty"`
}

// ListClientsResponse wraps a page of clients with the next page token.
type ListClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		CompanyName:   c.CompanyName,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		Industry:      c.Industry,
		Notes:         c.Notes,
	}
}

// ToClientResponses converts a slice of domain clients.
func ToClientResponses(cs []domain.Client) []ClientResponse {
	result := make([]ClientResponse, len(cs))
	for i := range cs {
		result[i] = ToClientResponse(&cs[i])
	}
	return result
}
