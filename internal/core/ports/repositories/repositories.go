package repositories

// RepositoryProvider aggregates all repository facades so wiring code can pass
// a single dependency around.
type RepositoryProvider struct {
	Conversion   ConversionRepositoryFacade
	Deduction    DeductionRepositoryFacade
	Lead         LeadRepositoryFacade
	Visit        VisitRepositoryFacade
	Goal         GoalRepositoryFacade
	Client       ClientRepositoryFacade
	User         UserRepositoryFacade
	Currency     CurrencyRepository
	ExchangeRate ExchangeRateRepository
	Reporting    ReportingRepository
}
