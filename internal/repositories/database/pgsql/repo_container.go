package pgsql

import (
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Conversion:   newPgxConversionRepository(dbPool),
		Deduction:    newPgxDeductionRepository(dbPool),
		Lead:         newPgxLeadRepository(dbPool),
		Visit:        newPgxVisitRepository(dbPool),
		Goal:         newPgxGoalRepository(dbPool),
		Client:       newPgxClientRepository(dbPool),
		User:         newPgxUserRepository(dbPool),
		Currency:     newPgxCurrencyRepository(dbPool),
		ExchangeRate: newPgxExchangeRateRepository(dbPool),
		Reporting:    newPgxReportingRepository(dbPool),
	}
}
