package services

import (
	"context"
	"time"
)

// VisitReminder carries the details of a scheduled visit reminder email.
type VisitReminder struct {
	RecipientEmail string
	RepName        string
	CompanyName    string
	VisitDate      time.Time
	VisitTime      *string
}

// ConversionEvent carries the details of a workflow transition notification.
type ConversionEvent struct {
	RecipientEmail string
	RepName        string
	ConversionID   string
	Status         string
	Reason         *string
}

// NotificationDispatcherSvc sends fire-and-forget emails. Failures never roll
// back the state change that triggered them.
type NotificationDispatcherSvc interface {
	// SendVisitReminder emails a reminder for a scheduled visit.
	SendVisitReminder(ctx context.Context, reminder VisitReminder) error

	// SendConversionEvent emails the rep about a workflow transition.
	SendConversionEvent(ctx context.Context, event ConversionEvent) error
}

// CalendarEvent describes an entry to place on the rep's calendar.
type CalendarEvent struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []string
}

// CalendarSchedulerSvc creates calendar entries for scheduled visits.
type CalendarSchedulerSvc interface {
	// ScheduleEvent creates the event and returns the provider's event ID.
	ScheduleEvent(ctx context.Context, event CalendarEvent) (string, error)
}
