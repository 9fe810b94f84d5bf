package services

import (
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// notifier and calendar may be nil when the corresponding integration is not configured;
// the services degrade their side effects to warnings in that case.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	notifier portssvc.NotificationDispatcherSvc,
	calendar portssvc.CalendarSchedulerSvc,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg, repos.User)
	container.User = NewUserService(repos.User)
	container.Client = NewClientService(repos.Client)
	container.Lead = NewLeadService(repos.Lead, repos.User)
	container.Goal = NewGoalService(repos.Goal, repos.User)
	container.Currency = NewCurrencyService(repos.Currency, repos.User)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRate, container.Currency, repos.User)
	container.Converter = NewCurrencyConverter(repos.ExchangeRate, cfg.BaseCurrency)
	container.Deduction = NewDeductionService(repos.Deduction, repos.User)

	container.Visit = NewVisitService(
		repos.Visit,
		repos.User,
		container.Client,
		container.Lead,
		container.Goal,
		notifier,
		calendar,
	)

	container.Conversion = NewConversionService(
		repos.Conversion,
		repos.Lead,
		repos.User,
		repos.Deduction,
		repos.Currency,
		notifier,
		cfg.BaseCurrency,
		cfg.AllowDirectApproval,
	)

	container.Reporting = NewReportingService(repos.Reporting, repos.User, container.Converter, cfg.BaseCurrency)

	return container
}
