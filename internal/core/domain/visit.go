package domain

import "time"

// VisitType categorizes how the rep engaged the prospect.
type VisitType string

const (
	VisitColdCall     VisitType = "cold_call"
	VisitFollowUp     VisitType = "follow_up"
	VisitPresentation VisitType = "presentation"
	VisitMeeting      VisitType = "meeting"
	VisitPhoneCall    VisitType = "phone_call"
)

// VisitStatus distinguishes future scheduled visits from ones already held.
type VisitStatus string

const (
	VisitScheduled VisitStatus = "scheduled"
	VisitCompleted VisitStatus = "completed"
)

// Visit is a single rep activity record. Completed visits feed goal counters;
// scheduled visits can trigger reminder side effects.
type Visit struct {
	VisitID          string      `json:"visitID"` // Primary Key (e.g., UUID)
	RepID            string      `json:"repID"`   // FK -> users.user_id
	VisitDate        time.Time   `json:"visitDate"`
	VisitTime        *string     `json:"visitTime,omitempty"` // "HH:MM", nil when unspecified
	CompanyName      string      `json:"companyName"`
	ContactPerson    *string     `json:"contactPerson,omitempty"`
	ContactEmail     *string     `json:"contactEmail,omitempty"`
	VisitType        VisitType   `json:"visitType"`
	DurationMinutes  *int        `json:"durationMinutes,omitempty"`
	Outcome          *string     `json:"outcome,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	LeadGenerated    bool        `json:"leadGenerated"`
	LeadID           *string     `json:"leadID,omitempty"` // Set when a lead was created from this visit
	FollowUpRequired bool        `json:"followUpRequired"`
	FollowUpDate     *time.Time  `json:"followUpDate,omitempty"`
	Status           VisitStatus `json:"status"`
	AuditFields
}
