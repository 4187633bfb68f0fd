package dto

import (
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	UnreadOnly bool `form:"unreadOnly,default=false"`
	Limit      int  `form:"limit,default=20"`
	Offset     int  `form:"offset,default=0"`
}

// NotificationResponse is the public shape of a notification.
type NotificationResponse struct {
	NotificationID string `json:"notificationID"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	IsRead         bool   `json:"isRead"`
	CreatedAt      string `json:"createdAt"`
}

// ToNotificationResponse converts a domain notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Message:        n.Message,
		Type:           string(n.Type),
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListNotificationsResponse converts a slice of notifications to DTOs.
func ToListNotificationsResponse(ns []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(ns))
	for i := range ns {
		out[i] = ToNotificationResponse(&ns[i])
	}
	return out
}
