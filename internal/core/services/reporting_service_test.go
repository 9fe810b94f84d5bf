package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockUserRepo      *MockUserRepository
	mockConverter     *MockCurrencyConverter
	service           portssvc.ReportingSvcFacade

	manager domain.User
	period  domain.ReportPeriod
	ctx     context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockConverter = new(MockCurrencyConverter)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockUserRepo, suite.mockConverter, "USD")
	suite.ctx = context.Background()

	suite.manager = domain.User{
		UserID:   uuid.NewString(),
		Name:     "Mia Manager",
		Role:     domain.RoleManager,
		IsActive: true,
	}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.period = domain.ReportPeriod{Start: start, End: start.AddDate(0, 1, 0)}

	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.manager.UserID).Return(&suite.manager, nil).Maybe()
}

func approvedConversion(currency string, revenue, commissionAmt int64) domain.Conversion {
	amount := decimal.NewFromInt(commissionAmt)
	return domain.Conversion{
		ConversionID:     uuid.NewString(),
		ConversionDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		RevenueAmount:    decimal.NewFromInt(revenue),
		Currency:         currency,
		Status:           domain.ConversionApproved,
		CommissionAmount: &amount,
	}
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_TeamScope() {
	team := []string{uuid.NewString(), uuid.NewString()}
	suite.mockUserRepo.On("ListUserIDsByManager", mock.Anything, suite.manager.UserID).Return(team, nil).Once()

	repIDs := append(append([]string{}, team...), suite.manager.UserID)
	suite.mockReportingRepo.On("CountVisits", mock.Anything, suite.period, repIDs).Return(12, nil).Once()
	suite.mockReportingRepo.On("CountLeads", mock.Anything, suite.period, repIDs).Return(5, nil).Once()
	conversions := []domain.Conversion{
		approvedConversion("USD", 1000, 180),
		approvedConversion("EUR", 500, 90),
	}
	suite.mockReportingRepo.On("FindApprovedConversionsInPeriod", mock.Anything, suite.period, repIDs).Return(conversions, nil).Once()

	// USD rows pass through, the EUR row converts at 1.1.
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, mock.Anything, "USD", "USD", mock.Anything).
		Return(decimal.NewFromInt(1000), true).Once()
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, decimal.NewFromInt(180), "USD", "USD", mock.Anything).
		Return(decimal.NewFromInt(180), true).Once()
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, decimal.NewFromInt(500), "EUR", "USD", mock.Anything).
		Return(decimal.NewFromInt(550), true).Once()
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, decimal.NewFromInt(90), "EUR", "USD", mock.Anything).
		Return(decimal.NewFromInt(99), true).Once()

	summary, err := suite.service.GetPeriodSummary(suite.ctx, suite.period, domain.ScopeTeam, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 12, summary.TotalVisits)
	assert.Equal(suite.T(), 5, summary.TotalLeads)
	assert.Equal(suite.T(), 2, summary.TotalConversions)
	assert.True(suite.T(), summary.TotalRevenue.Equal(decimal.NewFromInt(1550)), "revenue = %s", summary.TotalRevenue)
	assert.True(suite.T(), summary.TotalCommission.Equal(decimal.NewFromInt(279)))
	assert.Equal(suite.T(), 0, summary.DegradedRows)
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_MissingRateDegradesRowOnly() {
	suite.mockUserRepo.On("ListUserIDsByManager", mock.Anything, suite.manager.UserID).Return([]string{}, nil).Once()
	repIDs := []string{suite.manager.UserID}
	suite.mockReportingRepo.On("CountVisits", mock.Anything, suite.period, repIDs).Return(0, nil).Once()
	suite.mockReportingRepo.On("CountLeads", mock.Anything, suite.period, repIDs).Return(0, nil).Once()
	conversions := []domain.Conversion{
		approvedConversion("USD", 1000, 180),
		approvedConversion("GBP", 700, 140),
	}
	suite.mockReportingRepo.On("FindApprovedConversionsInPeriod", mock.Anything, suite.period, repIDs).Return(conversions, nil).Once()

	suite.mockConverter.On("ConvertOrFallback", mock.Anything, mock.Anything, "USD", "USD", mock.Anything).
		Return(decimal.NewFromInt(1000), true).Once()
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, decimal.NewFromInt(180), "USD", "USD", mock.Anything).
		Return(decimal.NewFromInt(180), true).Once()
	// No GBP rate on file: raw amounts are used and the row is flagged.
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, decimal.NewFromInt(700), "GBP", "USD", mock.Anything).
		Return(decimal.NewFromInt(700), false).Once()
	suite.mockConverter.On("ConvertOrFallback", mock.Anything, decimal.NewFromInt(140), "GBP", "USD", mock.Anything).
		Return(decimal.NewFromInt(140), false).Once()

	summary, err := suite.service.GetPeriodSummary(suite.ctx, suite.period, domain.ScopeTeam, suite.manager.UserID)

	suite.Require().NoError(err)
	assert.True(suite.T(), summary.TotalRevenue.Equal(decimal.NewFromInt(1700)))
	assert.Equal(suite.T(), 1, summary.DegradedRows)
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_OrganizationRequiresDirector() {
	_, err := suite.service.GetPeriodSummary(suite.ctx, suite.period, domain.ScopeOrganization, suite.manager.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *ReportingServiceTestSuite) TestGetPeriodSummary_InvalidPeriod() {
	inverted := domain.ReportPeriod{Start: suite.period.End, End: suite.period.Start}
	_, err := suite.service.GetPeriodSummary(suite.ctx, inverted, domain.ScopeIndividual, suite.manager.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestGetRepPerformance_IndividualScopeRejected() {
	_, err := suite.service.GetRepPerformance(suite.ctx, suite.period, domain.ScopeIndividual, suite.manager.UserID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
