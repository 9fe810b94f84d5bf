package dto

import (
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// LogVisitRequest defines the payload for logging a visit. Reminder and
// calendar flags request fire-and-forget side effects for scheduled visits.
type LogVisitRequest struct {
	VisitDate        time.Time  `json:"visitDate" binding:"required"`
	VisitTime        *string    `json:"visitTime,omitempty"`
	CompanyName      string     `json:"companyName" binding:"required"`
	ContactPerson    *string    `json:"contactPerson,omitempty"`
	ContactEmail     *string    `json:"contactEmail,omitempty" binding:"omitempty,email"`
	VisitType        string     `json:"visitType" binding:"required,oneof=cold_call follow_up presentation meeting phone_call"`
	DurationMinutes  *int       `json:"durationMinutes,omitempty"`
	Outcome          *string    `json:"outcome,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	LeadGenerated    bool       `json:"leadGenerated"`
	FollowUpRequired bool       `json:"followUpRequired"`
	FollowUpDate     *time.Time `json:"followUpDate,omitempty"`
	SendReminder     bool       `json:"sendReminder"`
	AddToCalendar    bool       `json:"addToCalendar"`
}

// ListVisitsParams holds query parameters for listing visits.
type ListVisitsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// VisitResponse defines the structure for API responses containing visit details.
type VisitResponse struct {
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
	// Warnings surfaces non-fatal side-effect failures (lead creation,
	// reminder dispatch) to the initiating actor.
	Warnings []string `json:"warnings,omitempty"`
}

// ListVisitsResponse wraps a page of visits with the next page token.
type ListVisitsResponse struct {
	Visits    []VisitResponse `json:"visits"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToVisitResponse converts a domain.Visit to VisitResponse DTO.
func ToVisitResponse(v *domain.Visit) VisitResponse {
	return VisitResponse{
		VisitID:          v.VisitID,
		RepID:            v.RepID,
		VisitDate:        v.VisitDate,
		VisitTime:        v.VisitTime,
		CompanyName:      v.CompanyName,
		ContactPerson:    v.ContactPerson,
		ContactEmail:     v.ContactEmail,
		VisitType:        string(v.VisitType),
		DurationMinutes:  v.DurationMinutes,
		Outcome:          v.Outcome,
		Notes:            v.Notes,
		LeadGenerated:    v.LeadGenerated,
		LeadID:           v.LeadID,
		FollowUpRequired: v.FollowUpRequired,
		FollowUpDate:     v.FollowUpDate,
		Status:           string(v.Status),
	}
}

// ToVisitResponses converts a slice of domain visits.
func ToVisitResponses(vs []domain.Visit) []VisitResponse {
	result := make([]VisitResponse, len(vs))
	for i := range vs {
		result[i] = ToVisitResponse(&vs[i])
	}
	return result
}
