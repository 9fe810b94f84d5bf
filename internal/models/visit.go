package models

import "time"

// Visit is the persistence model for the visits table.
type Visit struct {
	VisitID          string     `json:"visitID"`
	RepID            string     `json:"repID"`
	VisitDate        time.Time  `json:"visitDate"`
	VisitTime        *string    `json:"visitTime,omitempty"`
	CompanyName      string     `json:"companyName"`
	ContactPerson    *string    `json:"contactPerson,omitempty"`
	ContactEmail     *string    `json:"contactEmail,omitempty"`
	VisitType        string     `json:"visitType"`
	DurationMinutes  *int       `json:"durationMinutes,omitempty"`
	Outcome          *string    `json:"outcome,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	LeadGenerated    bool       `json:"leadGenerated"`
	LeadID           *string    `json:"leadID,omitempty"`
	FollowUpRequired bool       `json:"followUpRequired"`
	FollowUpDate     *time.Time `json:"followUpDate,omitempty"`
	Status           string     `json:"status"`
	AuditFields
}
