package repositories

import (
	"context"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
)

// ListConversionsFilter narrows a conversion listing.
type ListConversionsFilter struct {
	RepID    *string
	RepIDs   []string // Used for team scoping; ignored when RepID is set
	Status   *domain.ConversionStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// ConversionReader defines read operations for conversion data.
type ConversionReader interface {
	// FindConversionByID retrieves a specific conversion by its unique identifier.
	FindConversionByID(ctx context.Context, conversionID string) (*domain.Conversion, error)

	// ListConversions retrieves a filtered, token-paginated list of conversions
	// ordered by conversion date descending. It returns the conversions, a token
	// for the next page, and an error.
	ListConversions(ctx context.Context, filter ListConversionsFilter, limit int, nextToken *string) ([]domain.Conversion, *string, error)
}

// ConversionWriter defines write operations for conversion data.
type ConversionWriter interface {
	// SaveConversion inserts a newly submitted conversion.
	SaveConversion(ctx context.Context, conversion domain.Conversion) error

	// ApplyTransition persists a workflow transition as a single atomic update:
	// status, actor/timestamp metadata, derived commission fields and the
	// incremented version all land in one statement, guarded by the expected
	// source status and version. Zero affected rows maps to apperrors.ErrConflict
	// so two racing transitions on the same conversion cannot both succeed.
	ApplyTransition(ctx context.Context, conversion domain.Conversion, expectedStatus domain.ConversionStatus, expectedVersion int64) error
}

// ConversionRepositoryFacade combines all conversion-related repository interfaces.
type ConversionRepositoryFacade interface {
	ConversionReader
	ConversionWriter
}
