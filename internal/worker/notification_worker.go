package worker

import (
	"github.com/thecoders/cartunn-backend/internal/events"
	"github.com/thecoders/cartunn-backend/internal/service"
)

// StartNotificationWorker subscribes the notification service to order
// lifecycle events so every create and update leaves a notification trail.
func StartNotificationWorker(dispatcher events.Dispatcher, notificationService *service.NotificationService) {
	if dispatcher == nil || notificationService == nil {
		return
	}
	notificationService.RegisterHandlers(dispatcher)
}
