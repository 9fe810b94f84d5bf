package repositories

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind period summaries.
// repIDs nil means organization-wide; otherwise activity is restricted to the
// given reps.
type ReportingRepository interface {
	// CountVisits counts visits of any status whose visit date falls in the period.
	CountVisits(ctx context.Context, period domain.ReportPeriod, repIDs []string) (int, error)

	// CountLeads counts leads of any status created in the period.
	CountLeads(ctx context.Context, period domain.ReportPeriod, repIDs []string) (int, error)

	// FindApprovedConversionsInPeriod retrieves approved conversions whose
	// conversion date falls in the period, with their derived commission fields.
	FindApprovedConversionsInPeriod(ctx context.Context, period domain.ReportPeriod, repIDs []string) ([]domain.Conversion, error)
}
