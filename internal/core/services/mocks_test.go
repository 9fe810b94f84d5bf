package services_test

import (
	"context"
	"time"

	"github.com/fieldglass/salesops_backend/internal/core/domain"
	portsrepo "github.com/fieldglass/salesops_backend/internal/core/ports/repositories"
	portssvc "github.com/fieldglass/salesops_backend/internal/core/ports/services"
	"github.com/fieldglass/salesops_backend/internal/dto"
	"github.com/fieldglass/salesops_backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUserIDsByManager(ctx context.Context, managerID string) ([]string, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ConversionRepository ---
type MockConversionRepository struct {
	mock.Mock
}

var _ portsrepo.ConversionRepositoryFacade = (*MockConversionRepository)(nil)

func (m *MockConversionRepository) FindConversionByID(ctx context.Context, conversionID string) (*domain.Conversion, error) {
	args := m.Called(ctx, conversionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockConversionRepository) ListConversions(ctx context.Context, filter portsrepo.ListConversionsFilter, limit int, nextToken *string) ([]domain.Conversion, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Conversion), returnedNextToken, args.Error(2)
}

func (m *MockConversionRepository) SaveConversion(ctx context.Context, conversion domain.Conversion) error {
	args := m.Called(ctx, conversion)
	return args.Error(0)
}

func (m *MockConversionRepository) ApplyTransition(ctx context.Context, conversion domain.Conversion, expectedStatus domain.ConversionStatus, expectedVersion int64) error {
	args := m.Called(ctx, conversion, expectedStatus, expectedVersion)
	return args.Error(0)
}

// --- Mock LeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

var _ portsrepo.LeadRepositoryFacade = (*MockLeadRepository)(nil)

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListLeads(ctx context.Context, createdBy *string, status *domain.LeadStatus, limit int, nextToken *string) ([]domain.Lead, *string, error) {
	args := m.Called(ctx, createdBy, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Lead), returnedNextToken, args.Error(2)
}

func (m *MockLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// --- Mock DeductionRepository ---
type MockDeductionRepository struct {
	mock.Mock
}

var _ portsrepo.DeductionRepositoryFacade = (*MockDeductionRepository)(nil)

func (m *MockDeductionRepository) FindDeductionByID(ctx context.Context, deductionID string) (*domain.Deduction, error) {
	args := m.Called(ctx, deductionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) ListDeductions(ctx context.Context, includeInactive bool) ([]domain.Deduction, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) ListActiveDeductions(ctx context.Context) ([]domain.Deduction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deduction), args.Error(1)
}

func (m *MockDeductionRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	args := m.Called(ctx, deduction)
	return args.Error(0)
}

func (m *MockDeductionRepository) UpdateDeduction(ctx context.Context, deduction domain.Deduction) error {
	args := m.Called(ctx, deduction)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepository = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepository = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, fromCode, toCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) CountVisits(ctx context.Context, period domain.ReportPeriod, repIDs []string) (int, error) {
	args := m.Called(ctx, period, repIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountLeads(ctx context.Context, period domain.ReportPeriod, repIDs []string) (int, error) {
	args := m.Called(ctx, period, repIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) FindApprovedConversionsInPeriod(ctx context.Context, period domain.ReportPeriod, repIDs []string) ([]domain.Conversion, error) {
	args := m.Called(ctx, period, repIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Conversion), args.Error(1)
}

// --- Mock VisitRepository ---
type MockVisitRepository struct {
	mock.Mock
}

var _ portsrepo.VisitRepositoryFacade = (*MockVisitRepository)(nil)

func (m *MockVisitRepository) FindVisitByID(ctx context.Context, visitID string) (*domain.Visit, error) {
	args := m.Called(ctx, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visit), args.Error(1)
}

func (m *MockVisitRepository) ListVisitsByRep(ctx context.Context, repID string, limit int, nextToken *string) ([]domain.Visit, *string, error) {
	args := m.Called(ctx, repID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Visit), returnedNextToken, args.Error(2)
}

func (m *MockVisitRepository) SaveVisit(ctx context.Context, visit domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

func (m *MockVisitRepository) UpdateVisit(ctx context.Context, visit domain.Visit) error {
	args := m.Called(ctx, visit)
	return args.Error(0)
}

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

var _ portsrepo.GoalRepositoryFacade = (*MockGoalRepository)(nil)

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindActiveGoal(ctx context.Context, userID string, goalType string, day time.Time) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalType, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) IncrementGoalProgress(ctx context.Context, goalID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, goalID, delta, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByCompanyName(ctx context.Context, companyName string) (*domain.Client, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, nextToken *string) ([]domain.Client, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Client), returnedNextToken, args.Error(2)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock NotificationDispatcher ---
type MockNotificationDispatcher struct {
	mock.Mock
}

var _ portssvc.NotificationDispatcherSvc = (*MockNotificationDispatcher)(nil)

func (m *MockNotificationDispatcher) SendVisitReminder(ctx context.Context, reminder portssvc.VisitReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockNotificationDispatcher) SendConversionEvent(ctx context.Context, event portssvc.ConversionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// --- Mock CalendarScheduler ---
type MockCalendarScheduler struct {
	mock.Mock
}

var _ portssvc.CalendarSchedulerSvc = (*MockCalendarScheduler)(nil)

func (m *MockCalendarScheduler) ScheduleEvent(ctx context.Context, event portssvc.CalendarEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

// --- Mock CurrencyConverter ---
type MockCurrencyConverter struct {
	mock.Mock
}

var _ portssvc.CurrencyConverterSvc = (*MockCurrencyConverter)(nil)

func (m *MockCurrencyConverter) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, fromCode, toCode, asOf)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyConverter) ConvertOrFallback(ctx context.Context, amount decimal.Decimal, fromCode, toCode string, asOf time.Time) (decimal.Decimal, bool) {
	args := m.Called(ctx, amount, fromCode, toCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

// --- Mock GoalWriterSvc (used by the visit service) ---
type MockGoalWriterSvc struct {
	mock.Mock
}

var _ portssvc.GoalWriterSvc = (*MockGoalWriterSvc)(nil)

func (m *MockGoalWriterSvc) CreateGoal(ctx context.Context, req dto.CreateGoalRequest, ownerUserID string) (*domain.Goal, error) {
	args := m.Called(ctx, req, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalWriterSvc) RecordProgress(ctx context.Context, userID string, goalType string, day time.Time, delta decimal.Decimal) error {
	args := m.Called(ctx, userID, goalType, day, delta)
	return args.Error(0)
}

// --- Mock ClientWriterSvc (used by the visit service) ---
type MockClientWriterSvc struct {
	mock.Mock
}

var _ portssvc.ClientWriterSvc = (*MockClientWriterSvc)(nil)

func (m *MockClientWriterSvc) FindOrCreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, bool, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Client), args.Bool(1), args.Error(2)
}

func (m *MockClientWriterSvc) UpdateClient(ctx context.Context, clientID string, req dto.CreateClientRequest, requestingUserID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// --- Mock LeadWriterSvc (used by the visit service) ---
type MockLeadWriterSvc struct {
	mock.Mock
}

var _ portssvc.LeadWriterSvc = (*MockLeadWriterSvc)(nil)

func (m *MockLeadWriterSvc) CreateLead(ctx context.Context, req dto.CreateLeadRequest, creatorUserID string) (*domain.Lead, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadWriterSvc) UpdateLeadStatus(ctx context.Context, leadID string, req dto.UpdateLeadStatusRequest, requestingUserID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}
