package services

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// DirectorySvcFacade projects users into per-restaurant staff buckets and
// manages tenant-wide toggles.
type DirectorySvcFacade interface {
	// BuildDirectory returns the restaurant -> staff projection over all users.
	BuildDirectory(ctx context.Context, actorUserID string) (map[string]domain.RestaurantStaff, error)

	// ListRestaurantStaff returns every account of one restaurant tenant.
	ListRestaurantStaff(ctx context.Context, actorUserID string, restaurantName string) ([]domain.User, error)

	// SetRestaurantStatus enables or disables every user of a restaurant as a
	// single atomic batch.
	SetRestaurantStatus(ctx context.Context, actorUserID string, restaurantName string, status domain.UserStatus) error
}
