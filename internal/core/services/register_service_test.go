package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/core/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
)

type RegisterServiceTestSuite struct {
	suite.Suite
	mockRegisterRepo *MockRegisterRepository
	mockJournalRepo  *MockJournalRepository
	mockAuthorizer   *MockAuthorizer
	mockSales        *MockSalesSummary
	service          portssvc.RegisterSvcFacade

	cashier domain.User
}

func (suite *RegisterServiceTestSuite) SetupTest() {
	suite.mockRegisterRepo = new(MockRegisterRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.mockSales = new(MockSalesSummary)
	suite.service = services.NewRegisterService(
		suite.mockRegisterRepo,
		suite.mockJournalRepo,
		suite.mockAuthorizer,
		suite.mockSales,
		events.NewBroadcaster(4),
	)
	suite.cashier = domain.User{
		UserID:         "user-1",
		Name:           "Marie",
		Role:           domain.RoleCashier,
		RestaurantName: "Chez Fifi",
		Status:         domain.StatusActive,
	}
}

func (suite *RegisterServiceTestSuite) authorizeCashier() {
	suite.mockAuthorizer.On("AuthorizeAction", mock.Anything, "user-1", domain.CapOperateRegister).
		Return(&suite.cashier, nil)
}

func (suite *RegisterServiceTestSuite) TestOpenRegisterSuccess() {
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{RestaurantName: "Chez Fifi"}, nil)
	suite.mockRegisterRepo.On("SaveSession", mock.Anything, mock.AnythingOfType("domain.RegisterSession")).
		Return(nil)

	session, err := suite.service.OpenRegister(context.Background(), "user-1", dto.OpenRegisterRequest{OpeningCash: "100.00"})

	suite.NoError(err)
	suite.True(session.IsOpen)
	suite.Equal("Marie", session.OpenedBy)
	suite.NotNil(session.OpenTime)
	suite.True(session.OpeningCash.Equal(decimal.RequireFromString("100.00")))
	suite.Nil(session.LastVariance)
	suite.mockRegisterRepo.AssertNumberOfCalls(suite.T(), "SaveSession", 1)
}

func (suite *RegisterServiceTestSuite) TestOpenRegisterAlreadyOpenKeepsExistingSession() {
	openTime := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{
			RestaurantName: "Chez Fifi",
			IsOpen:         true,
			OpenedBy:       "Alice",
			OpenTime:       &openTime,
			OpeningCash:    decimal.RequireFromString("50"),
		}, nil)

	_, err := suite.service.OpenRegister(context.Background(), "user-1", dto.OpenRegisterRequest{OpeningCash: "100"})

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *RegisterServiceTestSuite) TestOpenRegisterMissingCash() {
	suite.authorizeCashier()

	_, err := suite.service.OpenRegister(context.Background(), "user-1", dto.OpenRegisterRequest{OpeningCash: "  "})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.OpenRegister(context.Background(), "user-1", dto.OpenRegisterRequest{OpeningCash: "abc"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *RegisterServiceTestSuite) TestOpenRegisterForbiddenRole() {
	suite.mockAuthorizer.On("AuthorizeAction", mock.Anything, "user-1", domain.CapOperateRegister).
		Return(nil, apperrors.ErrForbidden)

	_, err := suite.service.OpenRegister(context.Background(), "user-1", dto.OpenRegisterRequest{OpeningCash: "100"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "FindSession", mock.Anything, mock.Anything)
}

func (suite *RegisterServiceTestSuite) TestComputeVariance() {
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{
			RestaurantName: "Chez Fifi",
			IsOpen:         true,
			OpeningCash:    decimal.RequireFromString("100"),
		}, nil)
	suite.mockSales.On("CashSalesForDay", mock.Anything, "Chez Fifi", mock.Anything).
		Return(decimal.RequireFromString("875.50"), nil)

	var saved domain.RegisterSession
	suite.mockRegisterRepo.On("SaveSession", mock.Anything, mock.AnythingOfType("domain.RegisterSession")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.RegisterSession) }).
		Return(nil)

	report, err := suite.service.ComputeVariance(context.Background(), "user-1", dto.ComputeVarianceRequest{ActualCashCounted: "970"})

	suite.NoError(err)
	suite.True(report.ExpectedCash.Equal(decimal.RequireFromString("975.50")))
	suite.True(report.Variance.Equal(decimal.RequireFromString("-5.50")))
	suite.NotNil(saved.LastVariance)
	suite.True(saved.LastVariance.Equal(decimal.RequireFromString("-5.50")))
	suite.True(saved.IsOpen, "variance computation must not change state")
}

func (suite *RegisterServiceTestSuite) TestComputeVarianceWhileClosed() {
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{RestaurantName: "Chez Fifi"}, nil)

	_, err := suite.service.ComputeVariance(context.Background(), "user-1", dto.ComputeVarianceRequest{ActualCashCounted: "970"})

	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *RegisterServiceTestSuite) TestCloseRegisterWithoutVariance() {
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{
			RestaurantName: "Chez Fifi",
			IsOpen:         true,
			OpeningCash:    decimal.RequireFromString("100"),
		}, nil)

	_, err := suite.service.CloseRegister(context.Background(), "user-1")

	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
	suite.mockRegisterRepo.AssertNotCalled(suite.T(), "ClearSession", mock.Anything, mock.Anything)
}

func (suite *RegisterServiceTestSuite) TestCloseRegisterAppendsOneEntryAndResets() {
	variance := decimal.RequireFromString("-5.50")
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{
			RestaurantName: "Chez Fifi",
			IsOpen:         true,
			OpeningCash:    decimal.RequireFromString("100"),
			LastVariance:   &variance,
		}, nil)
	suite.mockSales.On("TotalSalesForDay", mock.Anything, "Chez Fifi", mock.Anything).
		Return(decimal.RequireFromString("1200.25"), nil)

	var appended domain.JournalEntry
	suite.mockJournalRepo.On("AppendEntry", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) { appended = args.Get(1).(domain.JournalEntry) }).
		Return(nil)
	suite.mockRegisterRepo.On("ClearSession", mock.Anything, "Chez Fifi").Return(nil)

	entry, err := suite.service.CloseRegister(context.Background(), "user-1")

	suite.NoError(err)
	suite.mockJournalRepo.AssertNumberOfCalls(suite.T(), "AppendEntry", 1)
	suite.mockRegisterRepo.AssertNumberOfCalls(suite.T(), "ClearSession", 1)
	suite.True(appended.Variance.Equal(variance))
	suite.True(appended.TotalSales.Equal(decimal.RequireFromString("1200.25")))
	suite.True(appended.OpeningCash.Equal(decimal.RequireFromString("100")))
	suite.Equal("Marie", appended.ClosedBy)
	suite.Equal(time.Now().UTC().Format("2006-01-02"), appended.Date)
	suite.NotEmpty(entry.JournalID)
}

func (suite *RegisterServiceTestSuite) TestCloseRegisterWhileClosed() {
	suite.authorizeCashier()
	suite.mockRegisterRepo.On("FindSession", mock.Anything, "Chez Fifi").
		Return(&domain.RegisterSession{RestaurantName: "Chez Fifi"}, nil)

	_, err := suite.service.CloseRegister(context.Background(), "user-1")

	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func TestRegisterService(t *testing.T) {
	suite.Run(t, new(RegisterServiceTestSuite))
}
