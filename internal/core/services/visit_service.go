package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultVisitPageSize = 25

// goalTypeVisits is the goal counter fed by completed visits.
const goalTypeVisits = "visits"

// visitService records rep activity and runs the side effects that hang off a
// visit: client records, generated leads, goal counters, reminders and
// calendar entries. The visit write is authoritative; every side effect that
// fails is reported back as a warning instead of failing the request.
type visitService struct {
	BaseService
	visitRepo portsrepo.VisitRepositoryFacade
	userRepo  portsrepo.UserReader
	clientSvc portssvc.ClientWriterSvc
	leadSvc   portssvc.LeadWriterSvc
	goalSvc   portssvc.GoalWriterSvc
	notifier  portssvc.NotificationDispatcherSvc
	calendar  portssvc.CalendarSchedulerSvc
}

// NewVisitService creates a new visit service.
func NewVisitService(
	visitRepo portsrepo.VisitRepositoryFacade,
	userRepo portsrepo.UserReader,
	clientSvc portssvc.ClientWriterSvc,
	leadSvc portssvc.LeadWriterSvc,
	goalSvc portssvc.GoalWriterSvc,
	notifier portssvc.NotificationDispatcherSvc,
	calendar portssvc.CalendarSchedulerSvc,
) portssvc.VisitSvcFacade {
	return &visitService{
		visitRepo: visitRepo,
		userRepo:  userRepo,
		clientSvc: clientSvc,
		leadSvc:   leadSvc,
		goalSvc:   goalSvc,
		notifier:  notifier,
		calendar:  calendar,
	}
}

var _ portssvc.VisitSvcFacade = (*visitService)(nil)

// LogVisit records a visit and runs its side effects.
func (s *visitService) LogVisit(ctx context.Context, req dto.LogVisitRequest, repUserID string) (*domain.Visit, []string, error) {
	rep, err := requireRole(ctx, s.userRepo, repUserID, domain.RoleRep)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	status := domain.VisitCompleted
	if req.VisitDate.After(now) {
		status = domain.VisitScheduled
	}

	visit := domain.Visit{
		VisitID:          uuid.NewString(),
		RepID:            repUserID,
		VisitDate:        req.VisitDate.UTC(),
		VisitTime:        req.VisitTime,
		CompanyName:      req.CompanyName,
		ContactPerson:    req.ContactPerson,
		ContactEmail:     req.ContactEmail,
		VisitType:        domain.VisitType(req.VisitType),
		DurationMinutes:  req.DurationMinutes,
		Outcome:          req.Outcome,
		Notes:            req.Notes,
		LeadGenerated:    req.LeadGenerated,
		FollowUpRequired: req.FollowUpRequired,
		FollowUpDate:     req.FollowUpDate,
		Status:           status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     repUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: repUserID,
		},
	}

	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		s.LogError(ctx, err, "Failed to save visit", "company", req.CompanyName)
		return nil, nil, fmt.Errorf("failed to save visit: %w", err)
	}

	var warnings []string

	// Keep the client roster in sync with visited companies.
	if _, _, err := s.clientSvc.FindOrCreateClient(ctx, dto.CreateClientRequest{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Email:         req.ContactEmail,
	}, repUserID); err != nil {
		s.LogWarn(ctx, "Client sync failed for visit", "visit_id", visit.VisitID, "error", err.Error())
		warnings = append(warnings, fmt.Sprintf("client record could not be updated: %v", err))
	}

	if req.LeadGenerated {
		lead, err := s.generateLead(ctx, req, repUserID)
		if err != nil {
			s.LogWarn(ctx, "Lead generation failed for visit", "visit_id", visit.VisitID, "error", err.Error())
			warnings = append(warnings, fmt.Sprintf("lead could not be created: %v", err))
		} else {
			visit.LeadID = &lead.LeadID
			if err := s.visitRepo.UpdateVisit(ctx, visit); err != nil {
				s.LogWarn(ctx, "Failed to link generated lead to visit", "visit_id", visit.VisitID, "error", err.Error())
				warnings = append(warnings, "lead was created but could not be linked to the visit")
			}
		}
	}

	if status == domain.VisitCompleted {
		if err := s.goalSvc.RecordProgress(ctx, repUserID, goalTypeVisits, visit.VisitDate, decimal.NewFromInt(1)); err != nil {
			s.LogWarn(ctx, "Goal progress update failed", "visit_id", visit.VisitID, "error", err.Error())
			warnings = append(warnings, "visit goal counter could not be updated")
		}
	}

	if status == domain.VisitScheduled {
		if req.SendReminder {
			warnings = append(warnings, s.sendReminder(ctx, rep, visit)...)
		}
		if req.AddToCalendar {
			warnings = append(warnings, s.addToCalendar(ctx, rep, visit)...)
		}
	}

	s.LogInfo(ctx, "Visit logged", "visit_id", visit.VisitID, "status", string(status), "warnings", len(warnings))
	return &visit, warnings, nil
}

// CompleteVisit marks a scheduled visit completed and records its outcome.
func (s *visitService) CompleteVisit(ctx context.Context, visitID string, outcome *string, requestingUserID string) (*domain.Visit, []string, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleRep)
	if err != nil {
		return nil, nil, err
	}

	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find visit: %w", err)
	}
	if visit.RepID != actor.UserID && !actor.IsManagerOrAbove() {
		return nil, nil, fmt.Errorf("%w: visit belongs to another rep", apperrors.ErrForbidden)
	}
	if visit.Status == domain.VisitCompleted {
		return nil, nil, fmt.Errorf("%w: visit is already completed", apperrors.ErrConflict)
	}

	now := time.Now().UTC()
	visit.Status = domain.VisitCompleted
	if outcome != nil {
		visit.Outcome = outcome
	}
	visit.LastUpdatedAt = now
	visit.LastUpdatedBy = requestingUserID

	if err := s.visitRepo.UpdateVisit(ctx, *visit); err != nil {
		s.LogError(ctx, err, "Failed to complete visit", "visit_id", visitID)
		return nil, nil, fmt.Errorf("failed to complete visit: %w", err)
	}

	var warnings []string
	if err := s.goalSvc.RecordProgress(ctx, visit.RepID, goalTypeVisits, visit.VisitDate, decimal.NewFromInt(1)); err != nil {
		s.LogWarn(ctx, "Goal progress update failed", "visit_id", visitID, "error", err.Error())
		warnings = append(warnings, "visit goal counter could not be updated")
	}

	return visit, warnings, nil
}

// GetVisitByID retrieves a specific visit.
func (s *visitService) GetVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to find visit: %w", err)
	}
	return visit, nil
}

// ListVisits retrieves a paginated list of the requesting rep's visits.
func (s *visitService) ListVisits(ctx context.Context, params dto.ListVisitsParams, requestingUserID string) (*dto.ListVisitsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultVisitPageSize
	}

	visits, nextToken, err := s.visitRepo.ListVisitsByRep(ctx, requestingUserID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}

	return &dto.ListVisitsResponse{
		Visits:    dto.ToVisitResponses(visits),
		NextToken: nextToken,
	}, nil
}

// generateLead creates a lead from the visit details.
func (s *visitService) generateLead(ctx context.Context, req dto.LogVisitRequest, repUserID string) (*domain.Lead, error) {
	contactName := req.CompanyName
	if req.ContactPerson != nil && *req.ContactPerson != "" {
		contactName = *req.ContactPerson
	}
	return s.leadSvc.CreateLead(ctx, dto.CreateLeadRequest{
		CompanyName:  req.CompanyName,
		ContactName:  contactName,
		ContactEmail: req.ContactEmail,
		Source:       "Visit",
		NextFollowUp: req.FollowUpDate,
		Notes:        req.Notes,
	}, repUserID)
}

func (s *visitService) sendReminder(ctx context.Context, rep *domain.User, visit domain.Visit) []string {
	if s.notifier == nil {
		return []string{"reminder requested but email is not configured"}
	}
	err := s.notifier.SendVisitReminder(ctx, portssvc.VisitReminder{
		RecipientEmail: rep.Email,
		RepName:        rep.Name,
		CompanyName:    visit.CompanyName,
		VisitDate:      visit.VisitDate,
		VisitTime:      visit.VisitTime,
	})
	if err != nil {
		s.LogWarn(ctx, "Visit reminder failed", "visit_id", visit.VisitID, "error", err.Error())
		return []string{"reminder email could not be sent"}
	}
	return nil
}

func (s *visitService) addToCalendar(ctx context.Context, rep *domain.User, visit domain.Visit) []string {
	if s.calendar == nil {
		return []string{"calendar entry requested but calendar is not configured"}
	}

	start := visit.VisitDate
	if visit.VisitTime != nil {
		if t, err := time.Parse("15:04", *visit.VisitTime); err == nil {
			start = time.Date(start.Year(), start.Month(), start.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
		}
	}
	end := start.Add(time.Hour)
	if visit.DurationMinutes != nil && *visit.DurationMinutes > 0 {
		end = start.Add(time.Duration(*visit.DurationMinutes) * time.Minute)
	}

	attendees := []string{rep.Email}
	if visit.ContactEmail != nil && *visit.ContactEmail != "" {
		attendees = append(attendees, *visit.ContactEmail)
	}

	_, err := s.calendar.ScheduleEvent(ctx, portssvc.CalendarEvent{
		Title:       fmt.Sprintf("Visit: %s", visit.CompanyName),
		Description: visit.Notes,
		Start:       start,
		End:         end,
		Attendees:   attendees,
	})
	if err != nil {
		s.LogWarn(ctx, "Calendar entry failed", "visit_id", visit.VisitID, "error", err.Error())
		return []string{"calendar entry could not be created"}
	}
	return nil
}
