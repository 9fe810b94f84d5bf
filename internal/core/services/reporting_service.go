package services

import (
	"context"
	"fmt"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService aggregates visits, leads and approved conversions into
// period summaries. Revenue and commission totals are normalized into the
// reporting currency; a conversion whose currency cannot be normalized
// degrades that one row to its raw amount instead of failing the report.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	userRepo      portsrepo.UserReader
	converter     portssvc.CurrencyConverterSvc
	baseCurrency  string
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, userRepo portsrepo.UserReader, converter portssvc.CurrencyConverterSvc, baseCurrency string) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		userRepo:      userRepo,
		converter:     converter,
		baseCurrency:  baseCurrency,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetPeriodSummary aggregates activity for the period at the given scope.
func (s *reportingService) GetPeriodSummary(ctx context.Context, period domain.ReportPeriod, scope domain.ReportScope, requestingUserID string) (*domain.PeriodSummary, error) {
	if period.End.Before(period.Start) {
		return nil, fmt.Errorf("%w: period end must not precede period start", apperrors.ErrValidation)
	}

	actor, repIDs, err := s.resolveScope(ctx, scope, requestingUserID)
	if err != nil {
		return nil, err
	}

	reportCurrency := s.baseCurrency
	if actor.PreferredCurrency != nil && *actor.PreferredCurrency != "" {
		reportCurrency = *actor.PreferredCurrency
	}

	visits, err := s.reportingRepo.CountVisits(ctx, period, repIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}
	leads, err := s.reportingRepo.CountLeads(ctx, period, repIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	conversions, err := s.reportingRepo.FindApprovedConversionsInPeriod(ctx, period, repIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved conversions: %w", err)
	}

	summary := &domain.PeriodSummary{
		Period:           period,
		Scope:            scope,
		TotalVisits:      visits,
		TotalLeads:       leads,
		TotalConversions: len(conversions),
		TotalRevenue:     decimal.Zero,
		TotalCommission:  decimal.Zero,
		BaseCurrency:     reportCurrency,
	}

	for _, c := range conversions {
		revenue, ok := s.converter.ConvertOrFallback(ctx, c.RevenueAmount, c.Currency, reportCurrency, c.ConversionDate)
		if !ok {
			summary.DegradedRows++
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(revenue)

		if c.CommissionAmount != nil {
			commissionAmt, _ := s.converter.ConvertOrFallback(ctx, *c.CommissionAmount, c.Currency, reportCurrency, c.ConversionDate)
			summary.TotalCommission = summary.TotalCommission.Add(commissionAmt)
		}
	}

	return summary, nil
}

// GetRepPerformance breaks a team or organization period down per rep.
func (s *reportingService) GetRepPerformance(ctx context.Context, period domain.ReportPeriod, scope domain.ReportScope, requestingUserID string) ([]domain.RepPerformanceRow, error) {
	if scope == domain.ScopeIndividual {
		return nil, fmt.Errorf("%w: per-rep breakdown requires team or organization scope", apperrors.ErrValidation)
	}

	actor, repIDs, err := s.resolveScope(ctx, scope, requestingUserID)
	if err != nil {
		return nil, err
	}

	if repIDs == nil {
		users, err := s.userRepo.ListUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		repIDs = make([]string, 0, len(users))
		for _, u := range users {
			repIDs = append(repIDs, u.UserID)
		}
	}

	reportCurrency := s.baseCurrency
	if actor.PreferredCurrency != nil && *actor.PreferredCurrency != "" {
		reportCurrency = *actor.PreferredCurrency
	}

	rows := make([]domain.RepPerformanceRow, 0, len(repIDs))
	for _, repID := range repIDs {
		rep, err := s.userRepo.FindUserByID(ctx, repID)
		if err != nil {
			s.LogWarn(ctx, "Skipping rep in performance report", "rep_id", repID, "error", err.Error())
			continue
		}

		scoped := []string{repID}
		visits, err := s.reportingRepo.CountVisits(ctx, period, scoped)
		if err != nil {
			return nil, fmt.Errorf("failed to count visits for rep %s: %w", repID, err)
		}
		leads, err := s.reportingRepo.CountLeads(ctx, period, scoped)
		if err != nil {
			return nil, fmt.Errorf("failed to count leads for rep %s: %w", repID, err)
		}
		conversions, err := s.reportingRepo.FindApprovedConversionsInPeriod(ctx, period, scoped)
		if err != nil {
			return nil, fmt.Errorf("failed to load conversions for rep %s: %w", repID, err)
		}

		row := domain.RepPerformanceRow{
			RepID:       repID,
			RepName:     rep.Name,
			Visits:      visits,
			Leads:       leads,
			Conversions: len(conversions),
			Revenue:     decimal.Zero,
			CommissionOwed: decimal.Zero,
		}
		for _, c := range conversions {
			revenue, _ := s.converter.ConvertOrFallback(ctx, c.RevenueAmount, c.Currency, reportCurrency, c.ConversionDate)
			row.Revenue = row.Revenue.Add(revenue)
			if c.CommissionAmount != nil {
				commissionAmt, _ := s.converter.ConvertOrFallback(ctx, *c.CommissionAmount, c.Currency, reportCurrency, c.ConversionDate)
				row.CommissionOwed = row.CommissionOwed.Add(commissionAmt)
			}
		}
		if leads > 0 {
			row.ConversionRatio = decimal.NewFromInt(int64(len(conversions))).Div(decimal.NewFromInt(int64(leads)))
		} else {
			row.ConversionRatio = decimal.Zero
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// resolveScope checks the actor is allowed the scope and returns the rep IDs
// it covers. Nil rep IDs means organization-wide.
func (s *reportingService) resolveScope(ctx context.Context, scope domain.ReportScope, requestingUserID string) (*domain.User, []string, error) {
	switch scope {
	case domain.ScopeIndividual:
		actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleRep)
		if err != nil {
			return nil, nil, err
		}
		return actor, []string{requestingUserID}, nil

	case domain.ScopeTeam:
		actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleManager)
		if err != nil {
			return nil, nil, err
		}
		team, err := s.userRepo.ListUserIDsByManager(ctx, requestingUserID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list team members: %w", err)
		}
		// The manager's own activity counts toward the team.
		return actor, append(team, requestingUserID), nil

	case domain.ScopeOrganization:
		actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleDirector)
		if err != nil {
			return nil, nil, err
		}
		return actor, nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: unknown report scope %q", apperrors.ErrValidation, scope)
	}
}
