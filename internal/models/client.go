package models

// Client is the persistence model for the clients table.
type Client struct {
	ClientID      string  `json:"clientID"`
	CompanyName   string  `json:"companyName"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	AuditFields
}
