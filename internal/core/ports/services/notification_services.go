package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// NotificationSvcFacade creates and reads append-only notifications.
type NotificationSvcFacade interface {
	// CreateStockAlert appends one low-stock notification for an item.
	CreateStockAlert(ctx context.Context, restaurantName string, itemName string, newStock decimal.Decimal, unit string) (*domain.Notification, error)

	ListNotifications(ctx context.Context, actorUserID string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actorUserID string, notificationID string) error
}
