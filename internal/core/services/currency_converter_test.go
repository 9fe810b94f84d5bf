package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyConverterTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	converter    portssvc.CurrencyConverterSvc

	ctx  context.Context
	asOf time.Time
}

func (suite *CurrencyConverterTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.converter = services.NewCurrencyConverter(suite.mockRateRepo, "USD")
	suite.ctx = context.Background()
	suite.asOf = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func (suite *CurrencyConverterTestSuite) TestConvert_SameCurrencyIsIdentity() {
	amount := decimal.NewFromInt(250)

	converted, err := suite.converter.Convert(suite.ctx, amount, "EUR", "EUR", suite.asOf)

	suite.Require().NoError(err)
	suite.True(converted.Equal(amount))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindLatestRate")
}

func (suite *CurrencyConverterTestSuite) TestConvert_EmptyFromDefaultsToBaseCurrency() {
	amount := decimal.NewFromInt(100)
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "USD", "EUR", suite.asOf).
		Return(&domain.ExchangeRate{
			FromCurrencyCode: "USD",
			ToCurrencyCode:   "EUR",
			Rate:             decimal.RequireFromString("0.9"),
		}, nil)

	converted, err := suite.converter.Convert(suite.ctx, amount, "", "EUR", suite.asOf)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(90)), "got %s", converted)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConverterTestSuite) TestConvert_UsesInverseRateWhenDirectMissing() {
	amount := decimal.NewFromInt(90)
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "EUR", "USD", suite.asOf).
		Return(nil, apperrors.ErrNotFound)
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "USD", "EUR", suite.asOf).
		Return(&domain.ExchangeRate{
			FromCurrencyCode: "USD",
			ToCurrencyCode:   "EUR",
			Rate:             decimal.RequireFromString("0.9"),
		}, nil)

	converted, err := suite.converter.Convert(suite.ctx, amount, "EUR", "USD", suite.asOf)

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(100)), "got %s", converted)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyConverterTestSuite) TestConvert_NoRateEitherDirectionIsLookupError() {
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "GBP", "JPY", suite.asOf).
		Return(nil, apperrors.ErrNotFound)
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "JPY", "GBP", suite.asOf).
		Return(nil, apperrors.ErrNotFound)

	_, err := suite.converter.Convert(suite.ctx, decimal.NewFromInt(10), "GBP", "JPY", suite.asOf)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrExternalLookup))
}

func (suite *CurrencyConverterTestSuite) TestConvert_InvalidCodeIsValidationError() {
	_, err := suite.converter.Convert(suite.ctx, decimal.NewFromInt(10), "EURO", "USD", suite.asOf)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *CurrencyConverterTestSuite) TestConvertOrFallback_ReturnsRawAmountOnMiss() {
	amount := decimal.NewFromInt(123)
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "EUR", "USD", suite.asOf).
		Return(nil, apperrors.ErrNotFound)
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "USD", "EUR", suite.asOf).
		Return(nil, apperrors.ErrNotFound)

	converted, ok := suite.converter.ConvertOrFallback(suite.ctx, amount, "EUR", "USD", suite.asOf)

	suite.False(ok)
	suite.True(converted.Equal(amount))
}

func (suite *CurrencyConverterTestSuite) TestConvertOrFallback_ConvertsWhenRateExists() {
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "EUR", "USD", suite.asOf).
		Return(&domain.ExchangeRate{
			FromCurrencyCode: "EUR",
			ToCurrencyCode:   "USD",
			Rate:             decimal.RequireFromString("1.1"),
		}, nil)

	converted, ok := suite.converter.ConvertOrFallback(suite.ctx, decimal.NewFromInt(100), "EUR", "USD", suite.asOf)

	suite.True(ok)
	suite.True(converted.Equal(decimal.RequireFromString("110")), "got %s", converted)
}

func TestCurrencyConverterTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyConverterTestSuite))
}
