package repositories

import (
	"context"

	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// NotificationRepository persists append-only notifications. Only the read
// flag ever changes after creation.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n domain.Notification) error
	ListNotificationsByRestaurant(ctx context.Context, restaurantName string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error)
	// MarkNotificationRead flips the read flag on one notification owned by
	// the given restaurant. Another tenant's notification is ErrNotFound.
	MarkNotificationRead(ctx context.Context, restaurantName string, notificationID string) error
}
