package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/middleware"
)

type directoryService struct {
	userRepo   portsrepo.UserRepositoryFacade
	authorizer portssvc.AuthorizerSvc
}

// NewDirectoryService creates the tenant directory service.
func NewDirectoryService(userRepo portsrepo.UserRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.DirectorySvcFacade {
	return &directoryService{userRepo: userRepo, authorizer: authorizer}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

const directoryPageSize = 500

// BuildDirectory projects all users into per-restaurant staff buckets.
//
// Super Admins belong to no restaurant and appear in no bucket. The admin
// slot holds the last Admin encountered for a restaurant; if the data carries
// more than one Admin under the same name, the earlier ones are dropped from
// the projection entirely rather than demoted to employees. Users without a
// restaurant name group under the "Unassigned" bucket.
func (s *directoryService) BuildDirectory(ctx context.Context, actorUserID string) (map[string]domain.RestaurantStaff, error) {
	if _, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageTenants); err != nil {
		return nil, err
	}

	dir := make(map[string]domain.RestaurantStaff)
	offset := 0
	for {
		page, err := s.userRepo.FindUsers(ctx, directoryPageSize, offset)
		if err != nil {
			return nil, err
		}
		for i := range page {
			user := page[i]
			if user.Role == domain.RoleSuperAdmin {
				continue
			}
			key := user.RestaurantName
			if key == "" {
				key = domain.UnassignedRestaurant
			}
			bucket := dir[key]
			if user.Role == domain.RoleAdmin {
				bucket.Admin = &user
			} else {
				bucket.Employees = append(bucket.Employees, user)
			}
			dir[key] = bucket
		}
		if len(page) < directoryPageSize {
			break
		}
		offset += directoryPageSize
	}
	return dir, nil
}

// ListRestaurantStaff returns every account of one restaurant tenant. An
// unknown restaurant name reads as not found rather than an empty roster.
func (s *directoryService) ListRestaurantStaff(ctx context.Context, actorUserID string, restaurantName string) ([]domain.User, error) {
	if _, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageTenants); err != nil {
		return nil, err
	}
	staff, err := s.userRepo.FindUsersByRestaurant(ctx, restaurantName)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return staff, nil
}

// SetRestaurantStatus enables or disables every account of one restaurant in
// a single atomic batch.
func (s *directoryService) SetRestaurantStatus(ctx context.Context, actorUserID string, restaurantName string, status domain.UserStatus) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.authorizer.AuthorizeAction(ctx, actorUserID, domain.CapManageTenants); err != nil {
		return err
	}

	rows, err := s.userRepo.SetRestaurantStatus(ctx, restaurantName, status, actorUserID, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}

	logger.Info("Restaurant status toggled", slog.String("restaurant", restaurantName), slog.String("status", string(status)), slog.Int64("accounts", rows))
	return nil
}
