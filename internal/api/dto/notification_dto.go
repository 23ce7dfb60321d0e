package dto

import "github.com/thecoders/cartunn-backend/internal/domain"

// NotificationResponse representation of an order notification.
type NotificationResponse struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// NewNotificationResponse maps a domain notification to its response shape.
func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          notification.ID,
		OrderID:     notification.OrderID,
		Type:        notification.Type,
		Description: notification.Description,
	}
}

// NewNotificationResponseList maps a slice of notifications.
func NewNotificationResponseList(notifications []domain.Notification) []NotificationResponse {
	result := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		result[i] = NewNotificationResponse(&notifications[i])
	}
	return result
}
