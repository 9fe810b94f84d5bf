package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/utils/commission"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultConversionPageSize = 25

// conversionService drives the conversion approval workflow. Transitions are
// written with a status and version precondition so two actors racing on the
// same conversion cannot both win; the loser gets ErrConflict and must refetch.
type conversionService struct {
	BaseService
	conversionRepo portsrepo.ConversionRepositoryFacade
	leadRepo       portsrepo.LeadReader
	userRepo       portsrepo.UserReader
	deductionRepo  portsrepo.DeductionReader
	currencyRepo   portsrepo.CurrencyRepository
	notifier       portssvc.NotificationDispatcherSvc

	baseCurrency string
	// allowDirectApproval permits pending -> approved without a recommendation.
	allowDirectApproval bool
}

// NewConversionService creates a new conversion workflow service.
func NewConversionService(
	conversionRepo portsrepo.ConversionRepositoryFacade,
	leadRepo portsrepo.LeadReader,
	userRepo portsrepo.UserReader,
	deductionRepo portsrepo.DeductionReader,
	currencyRepo portsrepo.CurrencyRepository,
	notifier portssvc.NotificationDispatcherSvc,
	baseCurrency string,
	allowDirectApproval bool,
) portssvc.ConversionSvcFacade {
	return &conversionService{
		conversionRepo:      conversionRepo,
		leadRepo:            leadRepo,
		userRepo:            userRepo,
		deductionRepo:       deductionRepo,
		currencyRepo:        currencyRepo,
		notifier:            notifier,
		baseCurrency:        baseCurrency,
		allowDirectApproval: allowDirectApproval,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// SubmitConversion records a new conversion in pending status.
func (s *conversionService) SubmitConversion(ctx context.Context, req dto.SubmitConversionRequest, submitterUserID string) (*domain.Conversion, error) {
	if req.RevenueAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: revenue amount must be positive", apperrors.ErrValidation)
	}

	submitter, err := requireRole(ctx, s.userRepo, submitterUserID, domain.RoleRep)
	if err != nil {
		return nil, err
	}

	repID := req.RepID
	if repID == "" {
		repID = submitterUserID
	}
	if repID != submitterUserID {
		// Submitting on behalf of another rep requires manager authority.
		if !submitter.IsManagerOrAbove() {
			return nil, fmt.Errorf("%w: only managers may submit for another rep", apperrors.ErrForbidden)
		}
		rep, err := s.userRepo.FindUserByID(ctx, repID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: rep %s not found", apperrors.ErrValidation, repID)
			}
			return nil, fmt.Errorf("failed to load rep: %w", err)
		}
		if !rep.IsActive {
			return nil, fmt.Errorf("%w: rep %s is inactive", apperrors.ErrValidation, repID)
		}
	}

	lead, err := s.leadRepo.FindLeadByID(ctx, req.LeadID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: lead %s not found", apperrors.ErrValidation, req.LeadID)
		}
		return nil, fmt.Errorf("failed to load lead: %w", err)
	}
	if lead.Status == domain.LeadClosedLost {
		return nil, fmt.Errorf("%w: lead %s is closed lost", apperrors.ErrValidation, req.LeadID)
	}

	if req.CommissionRate != nil {
		if req.CommissionRate.IsNegative() || req.CommissionRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, fmt.Errorf("%w: commission rate must be between 0 and 100", apperrors.ErrValidation)
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = s.baseCurrency
	}

	now := time.Now().UTC()
	conversionDate := now
	if req.ConversionDate != nil {
		conversionDate = req.ConversionDate.UTC()
	}

	conversion := domain.Conversion{
		ConversionID:   uuid.NewString(),
		LeadID:         req.LeadID,
		RepID:          repID,
		ConversionDate: conversionDate,
		RevenueAmount:  req.RevenueAmount,
		Currency:       currency,
		CommissionRate: req.CommissionRate,
		Status:         domain.ConversionPending,
		SubmittedBy:    submitterUserID,
		SubmittedAt:    now,
		Notes:          req.Notes,
		Version:        1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     submitterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: submitterUserID,
		},
	}

	if err := s.conversionRepo.SaveConversion(ctx, conversion); err != nil {
		s.LogError(ctx, err, "Failed to save conversion", "lead_id", req.LeadID)
		return nil, fmt.Errorf("failed to save conversion: %w", err)
	}

	s.LogInfo(ctx, "Conversion submitted", "conversion_id", conversion.ConversionID, "rep_id", repID)
	return &conversion, nil
}

// RecommendConversion moves a pending conversion to recommended.
func (s *conversionService) RecommendConversion(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleManager)
	if err != nil {
		return nil, err
	}

	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion: %w", err)
	}

	if conversion.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: conversion is already %s", apperrors.ErrConflict, conversion.Status)
	}
	if conversion.Status != domain.ConversionPending {
		return nil, fmt.Errorf("%w: only pending conversions can be recommended, current status is %s", apperrors.ErrConflict, conversion.Status)
	}
	if conversion.SubmittedBy == actor.UserID {
		return nil, fmt.Errorf("%w: submitter cannot recommend their own conversion", apperrors.ErrForbidden)
	}

	expectedStatus := conversion.Status
	expectedVersion := conversion.Version

	now := time.Now().UTC()
	conversion.Status = domain.ConversionRecommended
	conversion.RecommendedBy = &actor.UserID
	conversion.RecommendedAt = &now
	conversion.Version++
	conversion.LastUpdatedAt = now
	conversion.LastUpdatedBy = actor.UserID

	if err := s.conversionRepo.ApplyTransition(ctx, *conversion, expectedStatus, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to recommend conversion: %w", err)
	}

	s.LogInfo(ctx, "Conversion recommended", "conversion_id", conversionID, "recommended_by", actor.UserID)
	s.notifyTransition(ctx, conversion, nil)
	return conversion, nil
}

// ApproveConversion moves a conversion to approved, snapshotting the active
// deduction set and computing the commission in the same write.
func (s *conversionService) ApproveConversion(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleManager)
	if err != nil {
		return nil, err
	}

	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion: %w", err)
	}

	if conversion.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: conversion is already %s", apperrors.ErrConflict, conversion.Status)
	}
	switch conversion.Status {
	case domain.ConversionRecommended:
		// Normal path.
	case domain.ConversionPending:
		if !s.allowDirectApproval {
			return nil, fmt.Errorf("%w: conversion must be recommended before approval", apperrors.ErrConflict)
		}
	default:
		return nil, fmt.Errorf("%w: conversion cannot be approved from status %s", apperrors.ErrConflict, conversion.Status)
	}

	rate, err := s.resolveCommissionRate(ctx, conversion)
	if err != nil {
		return nil, err
	}

	// Snapshot the active rule set. From here on the conversion's math never
	// depends on the live rules again.
	deductions, err := s.deductionRepo.ListActiveDeductions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active deductions: %w", err)
	}

	commissionable, _, trail, err := commission.ApplyDeductions(conversion.RevenueAmount, deductions)
	if err != nil {
		return nil, err
	}

	amount, err := commission.ComputeCommission(commissionable, rate, trail, s.currencyPrecision(ctx, conversion.Currency))
	if err != nil {
		return nil, err
	}

	expectedStatus := conversion.Status
	expectedVersion := conversion.Version

	now := time.Now().UTC()
	conversion.Status = domain.ConversionApproved
	conversion.ApprovedBy = &actor.UserID
	conversion.ApprovedAt = &now
	conversion.CommissionRate = &rate
	conversion.CommissionableAmount = &commissionable
	conversion.CommissionAmount = &amount
	conversion.DeductionsApplied = trail
	conversion.Version++
	conversion.LastUpdatedAt = now
	conversion.LastUpdatedBy = actor.UserID

	if err := s.conversionRepo.ApplyTransition(ctx, *conversion, expectedStatus, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to approve conversion: %w", err)
	}

	s.LogInfo(ctx, "Conversion approved",
		"conversion_id", conversionID,
		"approved_by", actor.UserID,
		"commission_amount", amount.String(),
	)
	s.notifyTransition(ctx, conversion, nil)
	return conversion, nil
}

// RejectConversion moves a pending or recommended conversion to rejected.
func (s *conversionService) RejectConversion(ctx context.Context, conversionID string, req dto.RejectConversionRequest, requestingUserID string) (*domain.Conversion, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleManager)
	if err != nil {
		return nil, err
	}
	if req.Reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion: %w", err)
	}

	if conversion.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: conversion is already %s", apperrors.ErrConflict, conversion.Status)
	}

	expectedStatus := conversion.Status
	expectedVersion := conversion.Version

	now := time.Now().UTC()
	conversion.Status = domain.ConversionRejected
	conversion.RejectionReason = &req.Reason
	conversion.ApprovedBy = nil
	conversion.ApprovedAt = nil
	conversion.Version++
	conversion.LastUpdatedAt = now
	conversion.LastUpdatedBy = actor.UserID

	if err := s.conversionRepo.ApplyTransition(ctx, *conversion, expectedStatus, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to reject conversion: %w", err)
	}

	s.LogInfo(ctx, "Conversion rejected", "conversion_id", conversionID, "rejected_by", actor.UserID)
	s.notifyTransition(ctx, conversion, &req.Reason)
	return conversion, nil
}

// RecomputeCommission re-runs the commission math for an approved conversion
// using its stored snapshot. Live deduction rules are never consulted.
func (s *conversionService) RecomputeCommission(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion: %w", err)
	}
	if conversion.Status != domain.ConversionApproved {
		return nil, fmt.Errorf("%w: only approved conversions can be recomputed", apperrors.ErrConflict)
	}
	if conversion.CommissionRate == nil {
		return nil, fmt.Errorf("%w: approved conversion has no commission rate", apperrors.ErrInternal)
	}

	// Rebuild the rule set from the snapshot, preserving its order.
	snapshot := make([]domain.Deduction, len(conversion.DeductionsApplied))
	for i, d := range conversion.DeductionsApplied {
		snapshot[i] = domain.Deduction{
			Label:                   d.Label,
			Percentage:              d.Percentage,
			AppliesBeforeCommission: d.BeforeCommission,
		}
	}

	commissionable, _, trail, err := commission.ApplyDeductions(conversion.RevenueAmount, snapshot)
	if err != nil {
		return nil, err
	}
	amount, err := commission.ComputeCommission(commissionable, *conversion.CommissionRate, trail, s.currencyPrecision(ctx, conversion.Currency))
	if err != nil {
		return nil, err
	}

	expectedStatus := conversion.Status
	expectedVersion := conversion.Version

	now := time.Now().UTC()
	conversion.CommissionableAmount = &commissionable
	conversion.CommissionAmount = &amount
	conversion.DeductionsApplied = trail
	conversion.Version++
	conversion.LastUpdatedAt = now
	conversion.LastUpdatedBy = actor.UserID

	if err := s.conversionRepo.ApplyTransition(ctx, *conversion, expectedStatus, expectedVersion); err != nil {
		return nil, fmt.Errorf("failed to persist recomputed commission: %w", err)
	}

	s.LogInfo(ctx, "Commission recomputed", "conversion_id", conversionID, "commission_amount", amount.String())
	return conversion, nil
}

// GetConversionByID retrieves a conversion subject to visibility rules.
func (s *conversionService) GetConversionByID(ctx context.Context, conversionID string, requestingUserID string) (*domain.Conversion, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleRep)
	if err != nil {
		return nil, err
	}

	conversion, err := s.conversionRepo.FindConversionByID(ctx, conversionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversion: %w", err)
	}

	if !actor.IsManagerOrAbove() && conversion.RepID != actor.UserID && conversion.SubmittedBy != actor.UserID {
		return nil, fmt.Errorf("%w: conversion belongs to another rep", apperrors.ErrForbidden)
	}
	return conversion, nil
}

// ListConversions retrieves a filtered, paginated list of conversions.
// Reps are restricted to their own conversions regardless of filters.
func (s *conversionService) ListConversions(ctx context.Context, params dto.ListConversionsParams, requestingUserID string) (*dto.ListConversionsResponse, error) {
	actor, err := requireRole(ctx, s.userRepo, requestingUserID, domain.RoleRep)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.ListConversionsFilter{
		RepID:    params.RepID,
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	}
	if params.Status != nil {
		status := domain.ConversionStatus(*params.Status)
		switch status {
		case domain.ConversionPending, domain.ConversionRecommended, domain.ConversionApproved, domain.ConversionRejected:
			filter.Status = &status
		default:
			return nil, fmt.Errorf("%w: unknown conversion status %q", apperrors.ErrValidation, *params.Status)
		}
	}
	if !actor.IsManagerOrAbove() {
		filter.RepID = &actor.UserID
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultConversionPageSize
	}

	conversions, nextToken, err := s.conversionRepo.ListConversions(ctx, filter, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	return &dto.ListConversionsResponse{
		Conversions: dto.ToConversionResponses(conversions),
		NextToken:   nextToken,
	}, nil
}

// resolveCommissionRate picks the rate recorded at submission, falling back
// to the rep's configured default.
func (s *conversionService) resolveCommissionRate(ctx context.Context, conversion *domain.Conversion) (decimal.Decimal, error) {
	if conversion.CommissionRate != nil {
		return *conversion.CommissionRate, nil
	}
	rep, err := s.userRepo.FindUserByID(ctx, conversion.RepID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load rep for commission rate: %w", err)
	}
	if rep.DefaultCommissionRate == nil {
		return decimal.Zero, fmt.Errorf("%w: rep %s has no commission rate configured", apperrors.ErrValidation, conversion.RepID)
	}
	return *rep.DefaultCommissionRate, nil
}

// currencyPrecision looks up the minor-unit precision of a currency, falling
// back to the standard two digits when the currency is not registered.
func (s *conversionService) currencyPrecision(ctx context.Context, currencyCode string) int {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return commission.StandardPrecision
	}
	return currency.Precision
}

// notifyTransition emails the rep about a workflow transition. Failures are
// logged and swallowed; the transition has already been committed.
func (s *conversionService) notifyTransition(ctx context.Context, conversion *domain.Conversion, reason *string) {
	if s.notifier == nil {
		return
	}
	rep, err := s.userRepo.FindUserByID(ctx, conversion.RepID)
	if err != nil {
		s.LogWarn(ctx, "Skipping conversion notification, rep lookup failed", "conversion_id", conversion.ConversionID, "error", err.Error())
		return
	}
	event := portssvc.ConversionEvent{
		RecipientEmail: rep.Email,
		RepName:        rep.Name,
		ConversionID:   conversion.ConversionID,
		Status:         string(conversion.Status),
		Reason:         reason,
	}
	if err := s.notifier.SendConversionEvent(ctx, event); err != nil {
		s.LogWarn(ctx, "Conversion notification failed", "conversion_id", conversion.ConversionID, "error", err.Error())
	}
}
