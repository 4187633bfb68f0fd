package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
)

// AuthorizerSvc resolves a user and checks that their role carries the
// required capability. Returns apperrors.ErrForbidden when it does not, and
// the acting user when it does, so callers can stamp audit fields without a
// second lookup.
type AuthorizerSvc interface {
	AuthorizeAction(ctx context.Context, userID string, cap domain.Capability) (*domain.User, error)
}

// UserReaderSvc defines read operations on users.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserProvisioner creates staff accounts. Provisioning is a privileged
// server-side operation: it never affects the creating admin's own session.
type UserProvisioner interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service operations.
type UserSvcFacade interface {
	AuthorizerSvc
	UserReaderSvc
	UserProvisioner
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}
