package services

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// ReportingSvcFacade produces period summaries over visits, leads and
// approved conversions.
type ReportingSvcFacade interface {
	// GetPeriodSummary aggregates activity for the period at the given scope.
	// Individual scope covers the requesting user, team scope their reports,
	// organization scope everyone. Team scope requires manager authority and
	// organization scope director authority.
	GetPeriodSummary(ctx context.Context, period domain.ReportPeriod, scope domain.ReportScope, requestingUserID string) (*domain.PeriodSummary, error)

	// GetRepPerformance breaks a team or organization period down per rep.
	GetRepPerformance(ctx context.Context, period domain.ReportPeriod, scope domain.ReportScope, requestingUserID string) ([]domain.RepPerformanceRow, error)
}
