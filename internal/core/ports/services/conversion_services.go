package services

import (
	"context"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	"github.com/fieldglass/salesops_backend/internal/dto"
)

// ConversionReaderSvc defines read operations for conversion data
type ConversionReaderSvc interface {
	// GetConversionByID retrieves a specific conversion by its ID. Reps only
	// see their own conversions; manager and above see everything.
	GetConversionByID(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error)

	// ListConversions retrieves a filtered, paginated list of conversions.
	ListConversions(ctx context.Context, params dto.ListConversionsParams, requestingUserID string) (*dto.ListConversionsResponse, error)
}

// ConversionWorkflowSvc defines the approval workflow operations. Every
// transition is guarded by the conversion's current status and version so
// concurrent actors cannot both succeed.
type ConversionWorkflowSvc interface {
	// SubmitConversion records a new conversion in pending status.
	SubmitConversion(ctx context.Context, req dto.SubmitConversionRequest, submitterUserID string) (*domain.Conversion, error)

	// RecommendConversion moves a pending conversion to recommended. The actor
	// must hold manager authority or above and must differ from the submitter.
	RecommendConversion(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error)

	// ApproveConversion moves a recommended conversion to approved, snapshotting
	// the active deduction rules and computing the commission in the same write.
	ApproveConversion(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error)

	// RejectConversion moves a pending or recommended conversion to rejected.
	// A non-empty reason is required.
	RejectConversion(ctx context.Context, conversionID string, req dto.RejectConversionRequest, requestingUserID string) (*domain.Conversion, error)

	// RecomputeCommission re-runs the commission math for an approved conversion
	// from its stored deduction snapshot. Admin only; the snapshot itself is
	// never replaced.
	RecomputeCommission(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	ConversionReaderSvc
	ConversionWorkflowSvc
}
