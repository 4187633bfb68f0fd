package services_test

import (
	"context"
	"testing"

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

type InventoryServiceTestSuite struct {
	suite.Suite
	mockInventoryRepo *MockInventoryRepository
	mockAuthorizer    *MockAuthorizer
	mockNotifications *MockNotificationSvc
	service           portssvc.InventorySvcFacade

	admin domain.User
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInventoryRepo = new(MockInventoryRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.mockNotifications = new(MockNotificationSvc)
	suite.service = services.NewInventoryService(
		suite.mockInventoryRepo,
		suite.mockAuthorizer,
		suite.mockNotifications,
		events.NewBroadcaster(4),
	)
	suite.admin = domain.User{
		UserID:         "admin-1",
		Name:           "Fifi",
		Role:           domain.RoleAdmin,
		RestaurantName: "Chez Fifi",
		Status:         domain.StatusActive,
	}
	suite.mockAuthorizer.On("AuthorizeAction", mock.Anything, "admin-1", domain.CapManageInventory).
		Return(&suite.admin, nil)
}

// flourItem has maxStock 100 and the default threshold, so the alert level
// sits at 20.
func (suite *InventoryServiceTestSuite) flourItem(stock string) *domain.InventoryItem {
	return &domain.InventoryItem{
		ItemID:         "item-1",
		RestaurantName: "Chez Fifi",
		Name:           "Flour",
		Unit:           "kg",
		Stock:          decimal.RequireFromString(stock),
		MaxStock:       decimal.RequireFromString("100"),
	}
}

func (suite *InventoryServiceTestSuite) TestConsumeBeyondStockRejected() {
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(suite.flourItem("5"), nil)

	_, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "consume",
		Amount: decimal.RequireFromString("8"),
	})

	suite.ErrorIs(err, apperrors.ErrNegativeStock)
	suite.mockInventoryRepo.AssertNotCalled(suite.T(), "UpdateStock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifications.AssertNotCalled(suite.T(), "CreateStockAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestThresholdCrossingFiresOneAlert() {
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(suite.flourItem("25"), nil)
	suite.mockInventoryRepo.On("UpdateStock", mock.Anything, "item-1", decimal.RequireFromString("15"), "admin-1").Return(nil)
	suite.mockNotifications.On("CreateStockAlert", mock.Anything, "Chez Fifi", "Flour", decimal.RequireFromString("15"), "kg").
		Return(&domain.Notification{NotificationID: "n-1"}, nil)

	item, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "consume",
		Amount: decimal.RequireFromString("10"),
	})

	suite.NoError(err)
	suite.True(item.Stock.Equal(decimal.RequireFromString("15")))
	suite.mockNotifications.AssertNumberOfCalls(suite.T(), "CreateStockAlert", 1)
}

func (suite *InventoryServiceTestSuite) TestNoAlertWhileAlreadyLow() {
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(suite.flourItem("15"), nil)
	suite.mockInventoryRepo.On("UpdateStock", mock.Anything, "item-1", decimal.RequireFromString("14"), "admin-1").Return(nil)

	_, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "consume",
		Amount: decimal.RequireFromString("1"),
	})

	suite.NoError(err)
	suite.mockNotifications.AssertNotCalled(suite.T(), "CreateStockAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestPhysicalCountOverwritesAbsolutely() {
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(suite.flourItem("60"), nil)
	suite.mockInventoryRepo.On("UpdateStock", mock.Anything, "item-1", decimal.RequireFromString("60"), "admin-1").Return(nil)

	item, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "physical_count",
		Amount: decimal.RequireFromString("60"),
	})

	suite.NoError(err)
	suite.True(item.Stock.Equal(decimal.RequireFromString("60")))
	// Same count again changes nothing and fires nothing.
	suite.mockNotifications.AssertNotCalled(suite.T(), "CreateStockAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestStockWriteSurvivesAlertFailure() {
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(suite.flourItem("25"), nil)
	suite.mockInventoryRepo.On("UpdateStock", mock.Anything, "item-1", decimal.RequireFromString("15"), "admin-1").Return(nil)
	suite.mockNotifications.On("CreateStockAlert", mock.Anything, "Chez Fifi", "Flour", decimal.RequireFromString("15"), "kg").
		Return(nil, apperrors.ErrInternal)

	item, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "consume",
		Amount: decimal.RequireFromString("10"),
	})

	suite.NoError(err, "a failed alert write must not fail the mutation")
	suite.True(item.Stock.Equal(decimal.RequireFromString("15")))
}

func (suite *InventoryServiceTestSuite) TestMutationValidation() {
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(suite.flourItem("25"), nil)

	_, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "restock",
		Amount: decimal.Zero,
	})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "physical_count",
		Amount: decimal.RequireFromString("-1"),
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestMutationOnForeignItem() {
	foreign := suite.flourItem("25")
	foreign.RestaurantName = "Autre Maison"
	suite.mockInventoryRepo.On("FindItemByID", mock.Anything, "item-1").Return(foreign, nil)

	_, err := suite.service.ApplyMutation(context.Background(), "admin-1", "item-1", dto.StockMutationRequest{
		Kind:   "restock",
		Amount: decimal.RequireFromString("5"),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
