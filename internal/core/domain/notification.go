package domain

import "time"

// NotificationType categorizes a notification.
type NotificationType string

const (
	NotificationStock  NotificationType = "stock"
	NotificationSystem NotificationType = "system"
)

// Notification is an append-only alert. Only IsRead ever changes after creation.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (UUID)
	RestaurantName string           `json:"restaurantName"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	IsRead         bool             `json:"isRead"`
	CreatedAt      time.Time        `json:"createdAt"`
}
