package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tableauchef/tableauchef_backend/internal/apperrors"
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
	portsrepo "github.com/tableauchef/tableauchef_backend/internal/core/ports/repositories"
	"github.com/tableauchef/tableauchef_backend/internal/models"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, restaurant_name, message, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		n.NotificationID,
		n.RestaurantName,
		n.Message,
		string(n.Type),
		n.IsRead,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByRestaurant(ctx context.Context, restaurantName string, unreadOnly bool, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT notification_id, restaurant_name, message, type, is_read, created_at
		FROM notifications
		WHERE restaurant_name = $1 AND ($2 = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, restaurantName, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for %s: %w", restaurantName, err)
	}
	defer rows.Close()

	out := make([]domain.Notification, 0)
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.RestaurantName, &m.Message, &m.Type, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		out = append(out, domain.Notification{
			NotificationID: m.NotificationID,
			RestaurantName: m.RestaurantName,
			Message:        m.Message,
			Type:           domain.NotificationType(m.Type),
			IsRead:         m.IsRead,
			CreatedAt:      m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return out, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, restaurantName string, notificationID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND restaurant_name = $2;`, notificationID, restaurantName)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
