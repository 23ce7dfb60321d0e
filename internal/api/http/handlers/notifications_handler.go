package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thecoders/cartunn-backend/internal/api/dto"
	"github.com/thecoders/cartunn-backend/internal/service"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// NotificationsHandler exposes the read-only notification endpoints.
// Notifications are written by order lifecycle events, never over HTTP.
type NotificationsHandler struct {
	service *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{service: notificationService}
}

// ListNotifications GET /api/v1/notifications.
func (h *NotificationsHandler) ListNotifications(c *fiber.Ctx) error {
	notifications, err := h.service.GetAll(c.UserContext(), service.GetAllNotificationsQuery{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNotificationResponseList(notifications)})
}

// GetNotification GET /api/v1/notifications/:notificationId.
func (h *NotificationsHandler) GetNotification(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "notificationId")
	if err != nil {
		return err
	}
	notification, err := h.service.GetByID(c.UserContext(), service.GetNotificationByIDQuery{NotificationID: id})
	if err != nil {
		return err
	}
	if notification == nil {
		return apperrors.NewNotFound("notification", id)
	}
	return c.JSON(fiber.Map{"data": dto.NewNotificationResponse(notification)})
}

// ListOrderNotifications GET /api/v1/orders/:orderId/notifications.
func (h *NotificationsHandler) ListOrderNotifications(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "orderId")
	if err != nil {
		return err
	}
	notifications, err := h.service.GetAllByOrderID(c.UserContext(), service.GetAllNotificationsByOrderIDQuery{OrderID: orderID})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewNotificationResponseList(notifications)})
}
