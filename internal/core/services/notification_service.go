package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	portssvc "github.com/tableauchef/tableauchef_backend/internal/core/ports/services"
	"github.com/tableauchef/tableauchef_backend/internal/dto"
	"github.com/tableauchef/tableauchef_backend/internal/platform/events"
)

type notificationService struct {
	notificationRepo portsrepo.NotificationRepository
	users            portssvc.UserReaderSvc
	broadcaster      *events.Broadcaster
}

// NewNotificationService creates the notification service.
func NewNotificationService(
	notificationRepo portsrepo.NotificationRepository,
	users portssvc.UserReaderSvc,
	broadcaster *events.Broadcaster,
) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		users:            users,
		broadcaster:      broadcaster,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// CreateStockAlert appends one low-stock notification. It is called from the
// stock ledger on a threshold crossing, never directly from a handler.
func (s *notificationService) CreateStockAlert(ctx context.Context, restaurantName string, itemName string, newStock decimal.Decimal, unit string) (*domain.Notification, error) {
	n := domain.Notification{
		NotificationID: uuid.NewString(),
		RestaurantName: restaurantName,
		Message:        fmt.Sprintf("Low stock: %s is down to %s %s", itemName, newStock.String(), unit),
		Type:           domain.NotificationStock,
		IsRead:         false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		return nil, err
	}

	s.broadcaster.Publish(events.Event{
		Topic:   restaurantName,
		Kind:    "notification.created",
		Payload: dto.ToNotificationResponse(&n),
	})
	return &n, nil
}

func (s *notificationService) resolveActor(ctx context.Context, actorUserID string) (*domain.User, error) {
	actor, err := s.users.GetUserByID(ctx, actorUserID)
	if err != nil {
		return nil, apperrors.ErrForbidden
	}
	if !actor.IsActive() {
		return nil, apperrors.ErrForbidden
	}
	return actor, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, actorUserID string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	actor, err := s.resolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return s.notificationRepo.ListNotificationsByRestaurant(ctx, actor.RestaurantName, unreadOnly, limit, offset)
}

// MarkRead flips the read flag on a notification of the actor's own
// restaurant. Notifications of other tenants are indistinguishable from
// missing ones.
func (s *notificationService) MarkRead(ctx context.Context, actorUserID string, notificationID string) error {
	actor, err := s.resolveActor(ctx, actorUserID)
	if err != nil {
		return err
	}
	return s.notificationRepo.MarkNotificationRead(ctx, actor.RestaurantName, notificationID)
}
