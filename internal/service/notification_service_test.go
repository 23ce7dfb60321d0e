package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thecoders/cartunn-backend/internal/domain"
	"github.com/thecoders/cartunn-backend/internal/events"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAll(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAllByOrderID(ctx context.Context, orderID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func TestOrderCreatedEventWritesNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	var saved *domain.Notification
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Notification)
		}).
		Return(nil)

	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, zap.NewNop())
	svc.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventOrderCreated,
		OrderID: 12,
		Payload: events.OrderCreatedPayload{Name: "Crate A", Code: 42, Status: "RECEIVED"},
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.Equal(t, int64(12), saved.OrderID)
	require.Equal(t, NotificationTypeOrderCreated, saved.Type)
	require.Contains(t, saved.Description, "Crate A")
	repo.AssertExpectations(t)
}

func TestOrderUpdatedEventWritesNotification(t *testing.T) {
	repo := new(MockNotificationRepository)
	var saved *domain.Notification
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Notification")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Notification)
		}).
		Return(nil)

	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, zap.NewNop())
	svc.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventOrderUpdated,
		OrderID: 12,
		Payload: events.OrderUpdatedPayload{Name: "Crate A", Status: "SHIPPED"},
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	require.Equal(t, NotificationTypeOrderUpdated, saved.Type)
	require.Contains(t, saved.Description, "SHIPPED")
	repo.AssertExpectations(t)
}

func TestOrderEventRejectsPointerPayload(t *testing.T) {
	repo := new(MockNotificationRepository)

	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, zap.NewNop())
	svc.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventOrderCreated,
		OrderID: 12,
		Payload: &events.OrderCreatedPayload{Name: "Crate A"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected payload")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOrderDeletedEventLeavesNoNotification(t *testing.T) {
	repo := new(MockNotificationRepository)

	dispatcher := events.NewInMemoryDispatcher()
	svc := NewNotificationService(repo, zap.NewNop())
	svc.RegisterHandlers(dispatcher)

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventOrderDeleted,
		OrderID: 12,
		Payload: events.OrderDeletedPayload{Name: "Crate A"},
	})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestGetNotificationByIDAbsentIsNotAnError(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("FindByID", mock.Anything, int64(404)).Return(nil, pgx.ErrNoRows)

	svc := NewNotificationService(repo, zap.NewNop())

	notification, err := svc.GetByID(context.Background(), GetNotificationByIDQuery{NotificationID: 404})
	require.NoError(t, err)
	require.Nil(t, notification)
	repo.AssertExpectations(t)
}

func TestGetAllNotificationsByOrderIDEmptyIsValid(t *testing.T) {
	repo := new(MockNotificationRepository)
	repo.On("FindAllByOrderID", mock.Anything, int64(12)).Return([]domain.Notification{}, nil)

	svc := NewNotificationService(repo, zap.NewNop())

	notifications, err := svc.GetAllByOrderID(context.Background(), GetAllNotificationsByOrderIDQuery{OrderID: 12})
	require.NoError(t, err)
	require.Empty(t, notifications)
	repo.AssertExpectations(t)
}
