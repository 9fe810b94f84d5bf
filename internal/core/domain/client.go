package domain

// Client is a company record built up from visits and leads.
type Client struct {
	ClientID      string  `json:"clientID"` // Primary Key (e.g., UUID)
	CompanyName   string  `json:"companyName"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	AuditFields
}
