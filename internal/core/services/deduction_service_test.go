package services_test

import (
	"context"
	"testing"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/core/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DeductionServiceTestSuite struct {
	suite.Suite
	mockDeductionRepo *MockDeductionRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.DeductionSvcFacade

	admin domain.User
	rep   domain.User
	ctx   context.Context
}

func (suite *DeductionServiceTestSuite) SetupTest() {
	suite.mockDeductionRepo = new(MockDeductionRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewDeductionService(suite.mockDeductionRepo, suite.mockUserRepo)
	suite.ctx = context.Background()

	suite.admin = domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin, IsActive: true}
	suite.rep = domain.User{UserID: uuid.NewString(), Role: domain.RoleRep, IsActive: true}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.admin.UserID).Return(&suite.admin, nil).Maybe()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.rep.UserID).Return(&suite.rep, nil).Maybe()
}

func pctPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (suite *DeductionServiceTestSuite) TestCreateDeduction_Success() {
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{}, nil).Once()
	suite.mockDeductionRepo.On("SaveDeduction", mock.Anything, mock.AnythingOfType("domain.Deduction")).Return(nil).Once()

	deduction, err := suite.service.CreateDeduction(suite.ctx, dto.CreateDeductionRequest{
		Label:                   "Tax",
		Percentage:              pctPtr(10),
		AppliesBeforeCommission: true,
	}, suite.admin.UserID)

	suite.Require().NoError(err)
	assert.True(suite.T(), deduction.IsActive)
	assert.Equal(suite.T(), "Tax", deduction.Label)
}

func (suite *DeductionServiceTestSuite) TestCreateDeduction_AcceptsZeroPercent() {
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{}, nil).Once()
	suite.mockDeductionRepo.On("SaveDeduction", mock.Anything, mock.AnythingOfType("domain.Deduction")).Return(nil).Once()

	deduction, err := suite.service.CreateDeduction(suite.ctx, dto.CreateDeductionRequest{
		Label:                   "Waived levy",
		Percentage:              pctPtr(0),
		AppliesBeforeCommission: true,
	}, suite.admin.UserID)

	suite.Require().NoError(err)
	assert.True(suite.T(), deduction.Percentage.IsZero())
}

func (suite *DeductionServiceTestSuite) TestCreateDeduction_RequiresAdmin() {
	_, err := suite.service.CreateDeduction(suite.ctx, dto.CreateDeductionRequest{
		Label:      "Tax",
		Percentage: pctPtr(10),
	}, suite.rep.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *DeductionServiceTestSuite) TestCreateDeduction_RejectsSetOverOneHundred() {
	existing := []domain.Deduction{
		{DeductionID: uuid.NewString(), Label: "Tax", Percentage: decimal.NewFromInt(60), AppliesBeforeCommission: true, IsActive: true},
	}
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return(existing, nil).Once()

	_, err := suite.service.CreateDeduction(suite.ctx, dto.CreateDeductionRequest{
		Label:                   "Fees",
		Percentage:              pctPtr(50),
		AppliesBeforeCommission: true,
	}, suite.admin.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockDeductionRepo.AssertNotCalled(suite.T(), "SaveDeduction", mock.Anything, mock.Anything)
}

func (suite *DeductionServiceTestSuite) TestCreateDeduction_RejectsOutOfRangePercentage() {
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{}, nil).Once()

	_, err := suite.service.CreateDeduction(suite.ctx, dto.CreateDeductionRequest{
		Label:      "Negative",
		Percentage: pctPtr(-5),
	}, suite.admin.UserID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *DeductionServiceTestSuite) TestUpdateDeduction_ValidatesReplacementNotAddition() {
	// Raising an existing 60% rule to 90% keeps the set valid because the
	// old value is replaced, not added to.
	existing := domain.Deduction{
		DeductionID:             uuid.NewString(),
		Label:                   "Tax",
		Percentage:              decimal.NewFromInt(60),
		AppliesBeforeCommission: true,
		IsActive:                true,
	}
	suite.mockDeductionRepo.On("FindDeductionByID", mock.Anything, existing.DeductionID).Return(&existing, nil).Once()
	suite.mockDeductionRepo.On("ListActiveDeductions", mock.Anything).Return([]domain.Deduction{existing}, nil).Once()
	suite.mockDeductionRepo.On("UpdateDeduction", mock.Anything, mock.AnythingOfType("domain.Deduction")).Return(nil).Once()

	ninety := decimal.NewFromInt(90)
	updated, err := suite.service.UpdateDeduction(suite.ctx, existing.DeductionID, dto.UpdateDeductionRequest{Percentage: &ninety}, suite.admin.UserID)

	suite.Require().NoError(err)
	assert.True(suite.T(), updated.Percentage.Equal(ninety))
}

func (suite *DeductionServiceTestSuite) TestDeactivateDeduction_Success() {
	existing := domain.Deduction{
		DeductionID: uuid.NewString(),
		Label:       "Tax",
		Percentage:  decimal.NewFromInt(10),
		IsActive:    true,
	}
	suite.mockDeductionRepo.On("FindDeductionByID", mock.Anything, existing.DeductionID).Return(&existing, nil).Once()
	suite.mockDeductionRepo.On("UpdateDeduction", mock.Anything, mock.MatchedBy(func(d domain.Deduction) bool {
		return !d.IsActive
	})).Return(nil).Once()

	err := suite.service.DeactivateDeduction(suite.ctx, existing.DeductionID, suite.admin.UserID)

	suite.Require().NoError(err)
	suite.mockDeductionRepo.AssertExpectations(suite.T())
}

func TestDeductionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeductionServiceTestSuite))
}
