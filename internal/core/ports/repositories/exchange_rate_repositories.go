package repositories

import (
	"context"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// ExchangeRateRepository defines persistence operations for exchange rates.
type ExchangeRateRepository interface {
	// SaveExchangeRate inserts a new exchange rate.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindLatestRate retrieves the most recent rate for the pair effective on
	// or before asOf. Returns apperrors.ErrNotFound when no rate exists.
	FindLatestRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error)
}
