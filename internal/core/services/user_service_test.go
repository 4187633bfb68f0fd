package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/core/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestAuthorizeActionAllows() {
	cashier := &domain.User{UserID: "u-1", Role: domain.RoleCashier, Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(cashier, nil)

	actor, err := suite.service.AuthorizeAction(context.Background(), "u-1", domain.CapOperateRegister)

	suite.NoError(err)
	suite.Equal("u-1", actor.UserID)
}

func (suite *UserServiceTestSuite) TestAuthorizeActionDeniesRole() {
	waiter := &domain.User{UserID: "u-1", Role: domain.RoleWaiter, Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(waiter, nil)

	_, err := suite.service.AuthorizeAction(context.Background(), "u-1", domain.CapOperateRegister)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthorizeActionDeniesDisabledAccount() {
	disabled := &domain.User{UserID: "u-1", Role: domain.RoleAdmin, Status: domain.StatusDisabled}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-1").Return(disabled, nil)

	_, err := suite.service.AuthorizeAction(context.Background(), "u-1", domain.CapManageUsers)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthorizeActionUnknownUser() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.AuthorizeAction(context.Background(), "ghost", domain.CapManageUsers)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUserForcesCreatorTenant() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil)

	user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username:       "marie",
		Password:       "longenoughpw",
		Name:           "Marie",
		Role:           "Caissier",
		RestaurantName: "Somewhere Else",
	}, "admin-1")

	suite.NoError(err)
	suite.Equal("Chez Fifi", user.RestaurantName, "a non super admin always provisions into their own restaurant")
	suite.Equal(domain.StatusActive, user.Status)
	suite.NotEqual("longenoughpw", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("longenoughpw", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUserDuplicateUsername() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "marie",
		Password: "longenoughpw",
		Name:     "Marie",
		Role:     "Caissier",
	}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestDeleteUserSelfRejected() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)

	err := suite.service.DeleteUser(context.Background(), "admin-1", "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestDeleteUserCrossTenantRejected() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	other := &domain.User{UserID: "u-9", Role: domain.RoleWaiter, RestaurantName: "Autre Maison", Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-9").Return(other, nil)

	err := suite.service.DeleteUser(context.Background(), "u-9", "admin-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUserPartialFields() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	target := &domain.User{
		UserID:         "u-2",
		Name:           "Marie",
		Role:           domain.RoleCashier,
		RestaurantName: "Chez Fifi",
		Status:         domain.StatusActive,
		AuditFields:    domain.AuditFields{CreatedAt: time.Now().Add(-time.Hour)},
	}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "u-2").Return(target, nil)
	suite.mockUserRepo.On("UpdateUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)

	newName := "Marie D"
	updated, err := suite.service.UpdateUser(context.Background(), "u-2", dto.UpdateUserRequest{Name: &newName}, "admin-1")

	suite.NoError(err)
	suite.Equal("Marie D", updated.Name)
	suite.Equal(domain.RoleCashier, updated.Role, "omitted fields stay untouched")
}

func (suite *UserServiceTestSuite) TestCreateUserSuperAdminByTenantAdminRejected() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)

	_, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "boss",
		Password: "longenoughpw",
		Name:     "Boss",
		Role:     string(domain.RoleSuperAdmin),
	}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrForbidden, "a tenant admin must not mint an account that outranks them")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUserSuperAdminBySuperAdmin() {
	super := &domain.User{UserID: "super-1", Role: domain.RoleSuperAdmin, Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "super-1").Return(super, nil)
	suite.mockUserRepo.On("SaveUser", mock.Anything, mock.AnythingOfType("domain.User")).Return(nil)

	user, err := suite.service.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "root2",
		Password: "longenoughpw",
		Name:     "Root Two",
		Role:     string(domain.RoleSuperAdmin),
	}, "super-1")

	suite.NoError(err)
	suite.Equal(domain.RoleSuperAdmin, user.Role)
}

func (suite *UserServiceTestSuite) TestUpdateUserPromotionToSuperAdminRejected() {
	admin := &domain.User{UserID: "admin-1", Role: domain.RoleAdmin, RestaurantName: "Chez Fifi", Status: domain.StatusActive}
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "admin-1").Return(admin, nil)

	superRole := string(domain.RoleSuperAdmin)
	_, err := suite.service.UpdateUser(context.Background(), "u-2", dto.UpdateUserRequest{Role: &superRole}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
