package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/core/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockConversionRepo *MockConversionRepository
	mockLeadRepo       *MockLeadRepository
	mockUserRepo       *MockUserRepository
	mockDeductionRepo  *MockDeductionRepository
	mockCurrencyRepo   *MockCurrencyRepository
	mockNotifier       *MockNotificationDispatcher
	service            portssvc.ConversionSvcFacade

	rep     domain.User
	manager domain.User
	admin   domain.User
	lead    domain.Lead
	ctx     context.Context
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockConversionRepo = new(MockConversionRepository)
	suite.mockLeadRepo = new(MockLeadRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockDeductionRepo = new(MockDeductionRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockNotifier = new(MockNotificationDispatcher)
	suite.service = suite.newService(false)
	suite.ctx = context.Background()

	defaultRate := decimal.NewFromInt(20)
	suite.rep = domain.User{
		UserID:                uuid.NewString(),
		Name:                  "Rita Rep",
		Email:                 "rita@example.com",
		Role:                  domain.RoleRep,
		DefaultCommissionRate: &defaultRate,
		IsActive:              true,
	}
	suite.manager = domain.User{
		UserID:   uuid.NewString(),
		Name:     "Mia Manager",
		Email:    "mia@example.com",
		Role:     domain.RoleManager,
		IsActive: true,
	}
	suite.admin = domain.User{
		UserID:   uuid.NewString(),
		Name:     "Ada Admin",
		Email:    "ada@example.com",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}
	suite.lead = domain.Lead{
		LeadID:      uuid.NewString(),
		CompanyName: "Acme Co",
		Status:      domain.LeadQualified,
	}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.rep.UserID).Return(&suite.rep, nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.manager.UserID).Return(&suite.manager, nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.admin.UserID).Return(&suite.admin, nil).Maybe()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(nil, apperrors.ErrNotFound).Maybe()
	suite.mockNotifier.On("SendConversionEvent", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *ConversionServiceTestSuite) newService(allowDirectApproval bool) portssvc.ConversionSvcFacade {
	return services.NewConversionService(
		suite.mockConversionRepo,
		suite.mockLeadRepo,
		suite.mockUserRepo,
		suite.mockDeductionRepo,
		suite.mockCurrencyRepo,
		suite.mockNotifier,
		"USD",
		allowDirectApproval,
	)
}

func (suite *ConversionServiceTestSuite) pendingConversion() *domain.Conversion {
	return &domain.Conversion{
		ConversionID:   uuid.NewString(),
		LeadID:         suite.lead.LeadID,
		RepID:          suite.rep.UserID,
		ConversionDate: time.Now().UTC(),
		RevenueAmount:  decimal.NewFromInt(1000),
		Currency:       "USD",
		Status:         domain.ConversionPending,
		SubmittedBy:    suite.rep.UserID,
		SubmittedAt:    time.Now().UTC(),
		Version:        1,
	}
}

func (suite *ConversionServiceTestSuite) recommendedConversion() *domain.Conversion {
	c := suite.pendingConversion()
	c.Status = domain.ConversionRecommended
	c.RecommendedBy = &suite.manager.UserID
	c.Version = 2
	return c
}

// --- Submit ---

func (suite *ConversionServiceTestSuite) TestSubmitConversion_Success() {
	suite.mockLeadRepo.On("FindLeadByID", mock.Anything, suite.lead.LeadID).Return(&suite.lead, nil).Once()
	suite.mockConversionRepo.On("SaveConversion", mock.Anything, mock.AnythingOfType("domain.Conversion")).Return(nil).Once()

	conversion, err := suite.service.SubmitConversion(suite.ctx, dto.SubmitConversionRequest{
		LeadID:        suite.lead.LeadID,
		RevenueAmount: decimal.NewFromInt(1000),
	}, suite.rep.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.ConversionPending, conversion.Status)
	assert.Equal(suite.T(), suite.rep.UserID, conversion.RepID)
	assert.Equal(suite.T(), "USD", conversion.Currency)
	assert.EqualValues(suite.T(), 1, conversion.Version)
	assert.Nil(suite.T(), conversion.CommissionRate)
	assert.Nil(suite.T(), conversion.CommissionableAmount)
	assert.Nil(suite.T(), conversion.CommissionAmount)
	suite.mockConversionRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestSubmitConversion_RejectsNonPositiveRevenue() {
	_, err := suite.service.SubmitConversion(suite.ctx, dto.SubmitConversionRequest{
		LeadID:        suite.lead.LeadID,
		RevenueAmount: decimal.Zero,
	}, suite.rep.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockConversionRepo.AssertNotCalled(suite.T(), "SaveConversion", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestSubmitConversion_RejectsUnknownLead() {
	suite.mockLeadRepo.On("FindLeadByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SubmitConversion(suite.ctx, dto.SubmitConversionRequest{
		LeadID:        "missing",
		RevenueAmount: decimal.NewFromInt(100),
	}, suite.rep.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestSubmitConversion_OnBehalfRequiresManager() {
	_, err := suite.service.SubmitConversion(suite.ctx, dto.SubmitConversionRequest{
		LeadID:        suite.lead.LeadID,
		RepID:         suite.manager.UserID,
		RevenueAmount: decimal.NewFromInt(100),
	}, suite.rep.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// --- Recommend ---

func (suite *ConversionServiceTestSuite) TestRecommendConversion_Success() {
	pending := suite.pendingConversion()
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, pending.ConversionID).Return(pending, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.AnythingOfType("domain.Conversion"), domain.ConversionPending, int64(1)).Return(nil).Once()

	conversion, err := suite.service.RecommendConversion(suite.ctx, pending.ConversionID, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.ConversionRecommended, conversion.Status)
	assert.Equal(suite.T(), suite.manager.UserID, *conversion.RecommendedBy)
	assert.EqualValues(suite.T(), 2, conversion.Version)
	suite.mockConversionRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestRecommendConversion_RepForbidden() {
	_, err := suite.service.RecommendConversion(suite.ctx, uuid.NewString(), suite.rep.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *ConversionServiceTestSuite) TestRecommendConversion_SubmitterCannotRecommendOwn() {
	pending := suite.pendingConversion()
	pending.SubmittedBy = suite.manager.UserID
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, pending.ConversionID).Return(pending, nil).Once()

	_, err := suite.service.RecommendConversion(suite.ctx, pending.ConversionID, suite.manager.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockConversionRepo.AssertNotCalled(suite.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestRecommendConversion_TerminalConflict() {
	rejected := suite.pendingConversion()
	rejected.Status = domain.ConversionRejected
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, rejected.ConversionID).Return(rejected, nil).Once()

	_, err := suite.service.RecommendConversion(suite.ctx, rejected.ConversionID, suite.manager.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

// --- Approve ---

func (suite *ConversionServiceTestSuite) TestApproveConversion_ComputesCommissionWithDeductions() {
	recommended := suite.recommendedConversion()
	deductions := []domain.Deduction{
		{DeductionID: uuid.NewString(), Label: "Tax", Percentage: decimal.NewFromInt(10), AppliesBeforeCommission: true, IsActive: true},
	}
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, recommended.ConversionID).Return(recommended, nil).Once()
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return(deductions, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.AnythingOfType("domain.Conversion"), domain.ConversionRecommended, int64(2)).Return(nil).Once()

	conversion, err := suite.service.ApproveConversion(suite.ctx, recommended.ConversionID, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.ConversionApproved, conversion.Status)
	// 1000 revenue, 10% tax -> 900 commissionable, 20% rate -> 180 commission.
	assert.True(suite.T(), conversion.CommissionableAmount.Equal(decimal.NewFromInt(900)), "commissionable = %s", conversion.CommissionableAmount)
	assert.True(suite.T(), conversion.CommissionAmount.Equal(decimal.NewFromInt(180)), "commission = %s", conversion.CommissionAmount)
	suite.Require().Len(conversion.DeductionsApplied, 1)
	assert.Equal(suite.T(), "Tax", conversion.DeductionsApplied[0].Label)
	assert.True(suite.T(), conversion.DeductionsApplied[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.EqualValues(suite.T(), 3, conversion.Version)
	suite.mockConversionRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestApproveConversion_UsesRepDefaultRate() {
	recommended := suite.recommendedConversion()
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, recommended.ConversionID).Return(recommended, nil).Once()
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{}, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.Anything, domain.ConversionRecommended, int64(2)).Return(nil).Once()

	conversion, err := suite.service.ApproveConversion(suite.ctx, recommended.ConversionID, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.True(suite.T(), conversion.CommissionRate.Equal(decimal.NewFromInt(20)))
	assert.True(suite.T(), conversion.CommissionAmount.Equal(decimal.NewFromInt(200)))
}

func (suite *ConversionServiceTestSuite) TestApproveConversion_PendingRequiresRecommendation() {
	pending := suite.pendingConversion()
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, pending.ConversionID).Return(pending, nil).Once()

	_, err := suite.service.ApproveConversion(suite.ctx, pending.ConversionID, suite.manager.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockDeductionRepo.AssertNotCalled(suite.T(), "ListActiveDeductions", mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestApproveConversion_DirectApprovalFlag() {
	service := suite.newService(true)
	pending := suite.pendingConversion()
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, pending.ConversionID).Return(pending, nil).Once()
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{}, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.Anything, domain.ConversionPending, int64(1)).Return(nil).Once()

	conversion, err := service.ApproveConversion(suite.ctx, pending.ConversionID, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.ConversionApproved, conversion.Status)
}

func (suite *ConversionServiceTestSuite) TestApproveConversion_ConcurrentTransitionConflict() {
	recommended := suite.recommendedConversion()
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, recommended.ConversionID).Return(recommended, nil).Once()
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{}, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.Anything, domain.ConversionRecommended, int64(2)).Return(apperrors.ErrConflict).Once()

	_, err := suite.service.ApproveConversion(suite.ctx, recommended.ConversionID, suite.manager.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

// --- Reject ---

func (suite *ConversionServiceTestSuite) TestRejectConversion_Success() {
	pending := suite.pendingConversion()
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, pending.ConversionID).Return(pending, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.Anything, domain.ConversionPending, int64(1)).Return(nil).Once()

	conversion, err := suite.service.RejectConversion(suite.ctx, pending.ConversionID, dto.RejectConversionRequest{Reason: "duplicate entry"}, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.ConversionRejected, conversion.Status)
	assert.Equal(suite.T(), "duplicate entry", *conversion.RejectionReason)
}

func (suite *ConversionServiceTestSuite) TestRejectConversion_RequiresReason() {
	_, err := suite.service.RejectConversion(suite.ctx, uuid.NewString(), dto.RejectConversionRequest{}, suite.manager.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ConversionServiceTestSuite) TestRejectConversion_TerminalConflict() {
	approved := suite.pendingConversion()
	approved.Status = domain.ConversionApproved
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, approved.ConversionID).Return(approved, nil).Once()

	_, err := suite.service.RejectConversion(suite.ctx, approved.ConversionID, dto.RejectConversionRequest{Reason: "late"}, suite.manager.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

// --- Recompute ---

func (suite *ConversionServiceTestSuite) TestRecomputeCommission_UsesSnapshotNotLiveRules() {
	rate := decimal.NewFromInt(20)
	approved := suite.pendingConversion()
	approved.Status = domain.ConversionApproved
	approved.Version = 3
	approved.CommissionRate = &rate
	approved.DeductionsApplied = []domain.AppliedDeduction{
		{Label: "Tax", Percentage: decimal.NewFromInt(10), Amount: decimal.NewFromInt(100), BeforeCommission: true},
	}
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, approved.ConversionID).Return(approved, nil).Once()
	suite.mockConversionRepo.On("ApplyTransition", mock.Anything, mock.Anything, domain.ConversionApproved, int64(3)).Return(nil).Once()

	conversion, err := suite.service.RecomputeCommission(suite.ctx, approved.ConversionID, suite.admin.UserID)

	suite.Require().NoError(err)
	assert.True(suite.T(), conversion.CommissionAmount.Equal(decimal.NewFromInt(180)))
	// The live rule set must never be consulted for an approved conversion.
	suite.mockDeductionRepo.AssertNotCalled(suite.T(), "ListActiveDeductions", mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestRecomputeCommission_AdminOnly() {
	_, err := suite.service.RecomputeCommission(suite.ctx, uuid.NewString(), suite.manager.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

// --- Read paths ---

func (suite *ConversionServiceTestSuite) TestGetConversionByID_RepCannotSeeOthers() {
	other := suite.pendingConversion()
	other.RepID = suite.manager.UserID
	other.SubmittedBy = suite.manager.UserID
	suite.mockConversionRepo.On("FindConversionByID", mock.Anything, other.ConversionID).Return(other, nil).Once()

	_, err := suite.service.GetConversionByID(suite.ctx, other.ConversionID, suite.rep.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *ConversionServiceTestSuite) TestListConversions_RepScopedToSelf() {
	suite.mockConversionRepo.On("ListConversions", mock.Anything, mock.MatchedBy(func(f portsrepo.ListConversionsFilter) bool {
		return f.RepID != nil && *f.RepID == suite.rep.UserID
	}), 25, (*string)(nil)).Return([]domain.Conversion{}, nil, nil).Once()

	_, err := suite.service.ListConversions(suite.ctx, dto.ListConversionsParams{}, suite.rep.UserID)

	suite.Require().NoError(err)
	suite.mockConversionRepo.AssertExpectations(suite.T())
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
