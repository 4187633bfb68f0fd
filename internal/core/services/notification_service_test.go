package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/core/services"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	mockUsers            *MockUserReader
	service              portssvc.NotificationSvcFacade

	waiter *domain.User
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockUsers = new(MockUserReader)
	suite.service = services.NewNotificationService(suite.mockNotificationRepo, suite.mockUsers, events.NewBroadcaster(4))

	suite.waiter = &domain.User{UserID: "w-1", Name: "Paul", Role: domain.RoleWaiter, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
}

func (suite *NotificationServiceTestSuite) TestMarkReadScopedToActorRestaurant() {
	suite.mockUsers.On("GetUserByID", mock.Anything, "w-1").Return(suite.waiter, nil)
	suite.mockNotificationRepo.On("MarkNotificationRead", mock.Anything, "Chez Fifi", "n-1").Return(nil).Once()

	err := suite.service.MarkRead(context.Background(), "w-1", "n-1")

	suite.NoError(err)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkReadForeignNotificationReadsAsMissing() {
	// The repo scopes the update to the actor's restaurant, so a notification
	// owned by another tenant updates zero rows.
	suite.mockUsers.On("GetUserByID", mock.Anything, "w-1").Return(suite.waiter, nil)
	suite.mockNotificationRepo.On("MarkNotificationRead", mock.Anything, "Chez Fifi", "n-other-tenant").Return(apperrors.ErrNotFound).Once()

	err := suite.service.MarkRead(context.Background(), "w-1", "n-other-tenant")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *NotificationServiceTestSuite) TestMarkReadDisabledActorRejected() {
	disabled := &domain.User{UserID: "w-2", Role: domain.RoleWaiter, RestaurantName: "Chez Fifi", Status: domain.StatusDisabled}
	suite.mockUsers.On("GetUserByID", mock.Anything, "w-2").Return(disabled, nil)

	err := suite.service.MarkRead(context.Background(), "w-2", "n-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkNotificationRead", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestListNotificationsUsesActorRestaurant() {
	suite.mockUsers.On("GetUserByID", mock.Anything, "w-1").Return(suite.waiter, nil)
	suite.mockNotificationRepo.On("ListNotificationsByRestaurant", mock.Anything, "Chez Fifi", true, 20, 0).
		Return([]domain.Notification{{NotificationID: "n-1", RestaurantName: "Chez Fifi"}}, nil)

	ns, err := suite.service.ListNotifications(context.Background(), "w-1", true, 20, 0)

	suite.NoError(err)
	suite.Len(ns, 1)
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
