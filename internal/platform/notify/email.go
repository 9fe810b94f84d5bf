// Package notify sends transactional email over SMTP. All sends are
// best-effort: callers treat failures as warnings, never as request errors.
package notify

import (
	"context"
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/pkg/config"
	"gopkg.in/gomail.v2"
)

// EmailDispatcher sends notification emails through a configured SMTP relay.
type EmailDispatcher struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailDispatcher creates a dispatcher from SMTP configuration. It returns
// nil when no SMTP host is configured so callers can wire side effects off.
func NewEmailDispatcher(cfg *config.Config) *EmailDispatcher {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &EmailDispatcher{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFromAddress,
	}
}

var _ portssvc.NotificationDispatcherSvc = (*EmailDispatcher)(nil)

// SendVisitReminder emails a reminder for a scheduled visit.
func (d *EmailDispatcher) SendVisitReminder(ctx context.Context, reminder portssvc.VisitReminder) error {
	when := reminder.VisitDate.Format("Monday, 2 January 2006")
	if reminder.VisitTime != nil {
		when = fmt.Sprintf("%s at %s", when, *reminder.VisitTime)
	}

	subject := fmt.Sprintf("Visit reminder: %s", reminder.CompanyName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>This is a reminder of your scheduled visit to <b>%s</b> on %s.</p>",
		reminder.RepName, reminder.CompanyName, when,
	)
	return d.send(reminder.RecipientEmail, subject, body)
}

// SendConversionEvent emails the rep about a workflow transition.
func (d *EmailDispatcher) SendConversionEvent(ctx context.Context, event portssvc.ConversionEvent) error {
	subject := fmt.Sprintf("Conversion %s: %s", event.ConversionID, event.Status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your conversion <b>%s</b> is now <b>%s</b>.</p>",
		event.RepName, event.ConversionID, event.Status,
	)
	if event.Reason != nil && *event.Reason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", *event.Reason)
	}
	return d.send(event.RecipientEmail, subject, body)
}

func (d *EmailDispatcher) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := d.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNotification, err)
	}
	return nil
}
