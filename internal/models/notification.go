package models

import "time"

// Notification is the notifications table row. Append-only except is_read.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	RestaurantName string    `db:"restaurant_name"`
	Message        string    `db:"message"`
	Type           string    `db:"type"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
