package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

type VisitServiceTestSuite struct {
	suite.Suite
	mockVisitRepo *MockVisitRepository
	mockUserRepo  *MockUserRepository
	mockClientSvc *MockClientWriterSvc
	mockLeadSvc   *MockLeadWriterSvc
	mockGoalSvc   *MockGoalWriterSvc
	mockNotifier  *MockNotificationDispatcher
	mockCalendar  *MockCalendarScheduler
	service       portssvc.VisitSvcFacade

	rep domain.User
	ctx context.Context
}

func (suite *VisitServiceTestSuite) SetupTest() {
	suite.mockVisitRepo = new(MockVisitRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockClientSvc = new(MockClientWriterSvc)
	suite.mockLeadSvc = new(MockLeadWriterSvc)
	suite.mockGoalSvc = new(MockGoalWriterSvc)
	suite.mockNotifier = new(MockNotificationDispatcher)
	suite.mockCalendar = new(MockCalendarScheduler)
	suite.service = services.NewVisitService(
		suite.mockVisitRepo,
		suite.mockUserRepo,
		suite.mockClientSvc,
		suite.mockLeadSvc,
		suite.mockGoalSvc,
		suite.mockNotifier,
		suite.mockCalendar,
	)
	suite.ctx = context.Background()

	suite.rep = domain.User{
		UserID:   uuid.NewString(),
		Name:     "Rita Rep",
		Email:    "rita@example.com",
		Role:     domain.RoleRep,
		IsActive: true,
	}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.rep.UserID).Return(&suite.rep, nil).Maybe()
}

func (suite *VisitServiceTestSuite) completedVisitRequest() dto.LogVisitRequest {
	return dto.LogVisitRequest{
		VisitDate:   time.Now().UTC().Add(-time.Hour),
		CompanyName: "Acme Co",
		VisitType:   "meeting",
	}
}

func (suite *VisitServiceTestSuite) TestLogVisit_CompletedIncrementsGoal() {
	req := suite.completedVisitRequest()
	suite.mockVisitRepo.On("SaveVisit", mock.Anything, mock.AnythingOfType("domain.Visit")).Return(nil).Once()
	suite.mockClientSvc.On("FindOrCreateClient", mock.Anything, mock.Anything, suite.rep.UserID).
		Return(&domain.Client{ClientID: uuid.NewString(), CompanyName: "Acme Co"}, false, nil).Once()
	suite.mockGoalSvc.On("RecordProgress", mock.Anything, suite.rep.UserID, "visits", mock.Anything, decimal.NewFromInt(1)).Return(nil).Once()

	visit, warnings, err := suite.service.LogVisit(suite.ctx, req, suite.rep.UserID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.VisitCompleted, visit.Status)
	assert.Empty(suite.T(), warnings)
	suite.mockGoalSvc.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestLogVisit_SideEffectFailuresBecomeWarnings() {
	req := suite.completedVisitRequest()
	req.LeadGenerated = true
	suite.mockVisitRepo.On("SaveVisit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockClientSvc.On("FindOrCreateClient", mock.Anything, mock.Anything, suite.rep.UserID).
		Return(nil, false, errors.New("db down")).Once()
	suite.mockLeadSvc.On("CreateLead", mock.Anything, mock.Anything, suite.rep.UserID).
		Return(nil, errors.New("db down")).Once()
	suite.mockGoalSvc.On("RecordProgress", mock.Anything, suite.rep.UserID, "visits", mock.Anything, decimal.NewFromInt(1)).
		Return(errors.New("db down")).Once()

	visit, warnings, err := suite.service.LogVisit(suite.ctx, req, suite.rep.UserID)

	// The visit itself is saved; everything else degrades to warnings.
	suite.Require().NoError(err)
	assert.NotNil(suite.T(), visit)
	assert.Len(suite.T(), warnings, 3)
}

func (suite *VisitServiceTestSuite) TestLogVisit_GeneratedLeadIsLinked() {
	req := suite.completedVisitRequest()
	req.LeadGenerated = true
	leadID := uuid.NewString()
	suite.mockVisitRepo.On("SaveVisit", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockClientSvc.On("FindOrCreateClient", mock.Anything, mock.Anything, suite.rep.UserID).
		Return(&domain.Client{ClientID: uuid.NewString()}, true, nil).Once()
	suite.mockLeadSvc.On("CreateLead", mock.Anything, mock.MatchedBy(func(r dto.CreateLeadRequest) bool {
		return r.Source == "Visit" && r.CompanyName == "Acme Co"
	}), suite.rep.UserID).Return(&domain.Lead{LeadID: leadID}, nil).Once()
	suite.mockVisitRepo.On("UpdateVisit", mock.Anything, mock.MatchedBy(func(v domain.Visit) bool {
		return v.LeadID != nil && *v.LeadID == leadID
	})).Return(nil).Once()
	suite.mockGoalSvc.On("RecordProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	visit, warnings, err := suite.service.LogVisit(suite.ctx, req, suite.rep.UserID)

	suite.Require().NoError(err)
	assert.Empty(suite.T(), warnings)
	suite.Require().NotNil(visit.LeadID)
	assert.Equal(suite.T(), leadID, *visit.LeadID)
}

func (suite *VisitServiceTestSuite) TestLogVisit_ScheduledSendsReminderAndCalendar() {
	visitTime := "14:30"
	req := dto.LogVisitRequest{
		VisitDate:     time.Now().UTC().Add(48 * time.Hour),
		VisitTime:     &visitTime,
		CompanyName:   "Acme Co",
		VisitType:     "presentation",
		SendReminder:  true,
		AddToCalendar: true,
	}
	suite.mockVisitRepo.On("SaveVisit", mock.Anything, mock.MatchedBy(func(v domain.Visit) bool {
		return v.Status == domain.VisitScheduled
	})).Return(nil).Once()
	suite.mockClientSvc.On("FindOrCreateClient", mock.Anything, mock.Anything, suite.rep.UserID).
		Return(&domain.Client{}, true, nil).Once()
	suite.mockNotifier.On("SendVisitReminder", mock.Anything, mock.MatchedBy(func(r portssvc.VisitReminder) bool {
		return r.RecipientEmail == suite.rep.Email && r.CompanyName == "Acme Co"
	})).Return(nil).Once()
	suite.mockCalendar.On("ScheduleEvent", mock.Anything, mock.Anything).Return("evt-1", nil).Once()

	_, warnings, err := suite.service.LogVisit(suite.ctx, req, suite.rep.UserID)

	suite.Require().NoError(err)
	assert.Empty(suite.T(), warnings)
	// Scheduled visits never feed the goal counter.
	suite.mockGoalSvc.AssertNotCalled(suite.T(), "RecordProgress", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertExpectations(suite.T())
	suite.mockCalendar.AssertExpectations(suite.T())
}

func (suite *VisitServiceTestSuite) TestCompleteVisit_Success() {
	visit := &domain.Visit{
		VisitID:   uuid.NewString(),
		RepID:     suite.rep.UserID,
		VisitDate: time.Now().UTC(),
		Status:    domain.VisitScheduled,
	}
	suite.mockVisitRepo.On("FindVisitByID", mock.Anything, visit.VisitID).Return(visit, nil).Once()
	suite.mockVisitRepo.On("UpdateVisit", mock.Anything, mock.MatchedBy(func(v domain.Visit) bool {
		return v.Status == domain.VisitCompleted
	})).Return(nil).Once()
	suite.mockGoalSvc.On("RecordProgress", mock.Anything, suite.rep.UserID, "visits", mock.Anything, decimal.NewFromInt(1)).Return(nil).Once()

	outcome := "signed follow-up meeting"
	updated, warnings, err := suite.service.CompleteVisit(suite.ctx, visit.VisitID, &outcome, suite.rep.UserID)

	suite.Require().NoError(err)
	assert.Empty(suite.T(), warnings)
	assert.Equal(suite.T(), domain.VisitCompleted, updated.Status)
	assert.Equal(suite.T(), outcome, *updated.Outcome)
}

func TestVisitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VisitServiceTestSuite))
}
