// Package calendar creates Google Calendar entries for scheduled visits.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/pkg/config"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleScheduler creates events on a Google Calendar using a service account.
type GoogleScheduler struct {
	service    *gcal.Service
	calendarID string
}

// NewGoogleScheduler builds a scheduler from configuration. It returns nil
// when no credentials are configured so callers can wire the side effect off.
func NewGoogleScheduler(ctx context.Context, cfg *config.Config) (*GoogleScheduler, error) {
	if cfg.GoogleCredentialsJSON == "" {
		return nil, nil
	}

	jwtConfig, err := google.JWTConfigFromJSON([]byte(cfg.GoogleCredentialsJSON), gcal.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar credentials: %w", err)
	}

	service, err := gcal.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialise calendar client: %w", err)
	}

	return &GoogleScheduler{
		service:    service,
		calendarID: cfg.GoogleCalendarID,
	}, nil
}

var _ portssvc.CalendarSchedulerSvc = (*GoogleScheduler)(nil)

// ScheduleEvent creates the event and returns the provider's event ID.
func (s *GoogleScheduler) ScheduleEvent(ctx context.Context, event portssvc.CalendarEvent) (string, error) {
	attendees := make([]*gcal.EventAttendee, 0, len(event.Attendees))
	for _, email := range event.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	created, err := s.service.Events.Insert(s.calendarID, &gcal.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start:       &gcal.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:         &gcal.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
		Attendees:   attendees,
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: calendar insert: %v", apperrors.ErrNotification, err)
	}

	return created.Id, nil
}
