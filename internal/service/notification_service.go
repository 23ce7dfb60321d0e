package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/thecoders/cartunn-backend/internal/domain"
	"github.com/thecoders/cartunn-backend/internal/events"
	"github.com/thecoders/cartunn-backend/internal/repository"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// Notification types recorded for order lifecycle events.
const (
	NotificationTypeOrderCreated = "ORDER_CREATED"
	NotificationTypeOrderUpdated = "ORDER_UPDATED"
)

// GetNotificationByIDQuery requests a single notification.
type GetNotificationByIDQuery struct {
	NotificationID int64
}

// GetAllNotificationsQuery requests every notification.
type GetAllNotificationsQuery struct{}

// GetAllNotificationsByOrderIDQuery requests the notifications of one order.
type GetAllNotificationsByOrderIDQuery struct {
	OrderID int64
}

// NotificationService reads order notifications and writes them in reaction
// to order lifecycle events. Notifications have no command surface of their
// own; the event subscription is the only write path.
type NotificationService struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, logger: logger}
}

// RegisterHandlers subscribes the writer to order events.
func (s *NotificationService) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventOrderCreated, s.handleOrderCreated)
	dispatcher.Subscribe(events.EventOrderUpdated, s.handleOrderUpdated)
}

// GetByID returns the notification or nil when absent.
func (s *NotificationService) GetByID(ctx context.Context, query GetNotificationByIDQuery) (*domain.Notification, error) {
	notification, err := s.notifications.FindByID(ctx, query.NotificationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewPersistenceFailure("notification", err)
	}
	return notification, nil
}

// GetAll returns every notification in store order.
func (s *NotificationService) GetAll(ctx context.Context, _ GetAllNotificationsQuery) ([]domain.Notification, error) {
	result, err := s.notifications.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure("notification", err)
	}
	return result, nil
}

// GetAllByOrderID returns the notifications referencing one order. An empty
// result is valid, not an error.
func (s *NotificationService) GetAllByOrderID(ctx context.Context, query GetAllNotificationsByOrderIDQuery) ([]domain.Notification, error) {
	result, err := s.notifications.FindAllByOrderID(ctx, query.OrderID)
	if err != nil {
		return nil, apperrors.NewPersistenceFailure("notification", err)
	}
	return result, nil
}

func (s *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderCreatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	return s.record(ctx, &domain.Notification{
		OrderID:     event.OrderID,
		Type:        NotificationTypeOrderCreated,
		Description: fmt.Sprintf("Order %q was registered with status %s", payload.Name, payload.Status),
	})
}

func (s *NotificationService) handleOrderUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderUpdatedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload for %s", event.Type)
	}
	return s.record(ctx, &domain.Notification{
		OrderID:     event.OrderID,
		Type:        NotificationTypeOrderUpdated,
		Description: fmt.Sprintf("Order %q moved to status %s", payload.Name, payload.Status),
	})
}

func (s *NotificationService) record(ctx context.Context, notification *domain.Notification) error {
	if err := s.notifications.Save(ctx, notification); err != nil {
		s.logger.Error("failed to record notification",
			zap.Int64("order_id", notification.OrderID),
			zap.String("type", notification.Type),
			zap.Error(err))
		return err
	}
	return nil
}
