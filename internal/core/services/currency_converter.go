package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fieldglass/salesops_backend/internal/apperrors"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// currencyConverter normalizes amounts between currencies using stored rates.
// When no direct rate exists for a pair it falls back to the inverse pair.
type currencyConverter struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepository
	baseCurrency string
}

// NewCurrencyConverter creates a new currency converter. An empty source
// currency on Convert is treated as baseCurrency.
func NewCurrencyConverter(rateRepo portsrepo.ExchangeRateRepository, baseCurrency string) portssvc.CurrencyConverterSvc {
	return &currencyConverter{rateRepo: rateRepo, baseCurrency: baseCurrency}
}

var _ portssvc.CurrencyConverterSvc = (*currencyConverter)(nil)

// Convert converts amount from one currency to another as of the given date.
func (s *currencyConverter) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	if fromCode == "" {
		fromCode = s.baseCurrency
	}
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if len(fromCode) != 3 || len(toCode) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if fromCode == toCode {
		return amount, nil
	}

	rate, err := s.rateRepo.FindLatestRate(ctx, fromCode, toCode, asOf)
	if err == nil {
		return amount.Mul(rate.Rate), nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Zero, fmt.Errorf("%w: rate lookup %s->%s: %v", apperrors.ErrExternalLookup, fromCode, toCode, err)
	}

	// No direct rate; try the inverse pair.
	inverse, invErr := s.rateRepo.FindLatestRate(ctx, toCode, fromCode, asOf)
	if invErr != nil {
		if errors.Is(invErr, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no exchange rate for %s->%s as of %s", apperrors.ErrExternalLookup, fromCode, toCode, asOf.Format("2006-01-02"))
		}
		return decimal.Zero, fmt.Errorf("%w: rate lookup %s->%s: %v", apperrors.ErrExternalLookup, toCode, fromCode, invErr)
	}
	if inverse.Rate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: zero inverse rate for %s->%s", apperrors.ErrExternalLookup, toCode, fromCode)
	}
	return amount.Div(inverse.Rate), nil
}

// ConvertOrFallback converts the amount, returning the raw amount and false
// when no usable rate exists. Used by reporting so one missing rate degrades
// a single row instead of failing the whole summary.
func (s *currencyConverter) ConvertOrFallback(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, bool) {
	converted, err := s.Convert(ctx, amount, fromCode, toCode, asOf)
	if err != nil {
		s.LogWarn(ctx, "Currency conversion failed, using raw amount", "from", fromCode, "to", toCode, "error", err.Error())
		return amount, false
	}
	return converted, true
}
