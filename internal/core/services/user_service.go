package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/middleware"
	"github.com/tableauchef/tableauchef_backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service facade.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// AuthorizeAction resolves the acting user and checks their role against the
// capability table. Disabled and deleted accounts are always refused.
func (s *userService) AuthorizeAction(ctx context.Context, userID string, cap domain.Capability) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, fmt.Errorf("failed to resolve acting user: %w", err)
	}
	if !user.IsActive() {
		logger.Warn("Inactive account attempted action", slog.String("user_id", userID))
		return nil, apperrors.ErrForbidden
	}
	if !domain.RoleCan(user.Role, cap) {
		logger.Warn("Capability check failed", slog.String("user_id", userID), slog.String("role", string(user.Role)), slog.String("capability", string(cap)))
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// CreateUser provisions a staff account server-side. The creating admin's own
// session is never involved; a non super admin always provisions into their
// own restaurant regardless of what the request claims.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	creator, err := s.AuthorizeAction(ctx, creatorUserID, domain.CapManageUsers)
	if err != nil {
		return nil, err
	}

	restaurantName := req.RestaurantName
	if creator.Role != domain.RoleSuperAdmin {
		// Tenant admins provision into their own restaurant only, and can
		// never mint an account that outranks them.
		if domain.Role(req.Role) == domain.RoleSuperAdmin {
			logger.Warn("Blocked Super Admin provisioning attempt", slog.String("creator_id", creatorUserID))
			return nil, apperrors.ErrForbidden
		}
		restaurantName = creator.RestaurantName
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       req.Username,
		PasswordHash:   hash,
		Name:           req.Name,
		Role:           domain.Role(req.Role),
		RestaurantName: restaurantName,
		Status:         domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		logger.Error("Failed to save new user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User provisioned", slog.String("user_id", user.UserID), slog.String("role", req.Role), slog.String("restaurant", restaurantName))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	updater, err := s.AuthorizeAction(ctx, updaterUserID, domain.CapManageUsers)
	if err != nil {
		return nil, err
	}
	if updater.Role != domain.RoleSuperAdmin && req.Role != nil && domain.Role(*req.Role) == domain.RoleSuperAdmin {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if updater.Role != domain.RoleSuperAdmin && user.RestaurantName != updater.RestaurantName {
		return nil, apperrors.ErrForbidden
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	if req.Status != nil {
		user.Status = domain.UserStatus(*req.Status)
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	deleter, err := s.AuthorizeAction(ctx, deleterUserID, domain.CapManageUsers)
	if err != nil {
		return err
	}
	if userID == deleterUserID {
		return apperrors.ErrValidation
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if deleter.Role != domain.RoleSuperAdmin && user.RestaurantName != deleter.RestaurantName {
		return apperrors.ErrForbidden
	}

	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC(), deleterUserID)
}
