package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thecoders/cartunn-backend/internal/domain"
	"github.com/thecoders/cartunn-backend/internal/events"
	"github.com/thecoders/cartunn-backend/internal/repository"
)

// CreateOrderCommand carries all field values for a new order.
type CreateOrderCommand struct {
	Name        string
	Description string
	Code        int
	EntryDate   time.Time
	ExitDate    time.Time
	Status      string
}

// UpdateOrderCommand carries the target identity plus all mutable fields.
type UpdateOrderCommand struct {
	OrderID     int64
	Name        string
	Description string
	Code        int
	EntryDate   time.Time
	ExitDate    time.Time
	Status      string
}

// DeleteOrderCommand targets an order for removal.
type DeleteOrderCommand struct {
	OrderID int64
}

// GetOrderByIDQuery requests a single order.
type GetOrderByIDQuery struct {
	OrderID int64
}

// GetAllOrdersQuery requests every order.
type GetAllOrdersQuery struct{}

// OrderService handles order commands and queries.
type OrderService struct {
	core       crudCore[domain.Order]
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{
		core: crudCore[domain.Order]{
			kind:                   "order",
			keyOf:                  func(o *domain.Order) string { return o.Name },
			existsByKey:            orders.ExistsByName,
			existsByKeyExcludingID: orders.ExistsByNameExcludingID,
			existsByID:             orders.ExistsByID,
			findByID:               orders.FindByID,
			findAll:                orders.FindAll,
			save:                   orders.Save,
			deleteByID:             orders.DeleteByID,
			apply: func(dst, src *domain.Order) {
				dst.Name = src.Name
				dst.Description = src.Description
				dst.Code = src.Code
				dst.EntryDate = src.EntryDate
				dst.ExitDate = src.ExitDate
				dst.Status = src.Status
			},
		},
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Create registers a new order after checking name uniqueness.
func (s *OrderService) Create(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	order, err := s.core.create(ctx, &domain.Order{
		Name:        cmd.Name,
		Description: cmd.Description,
		Code:        cmd.Code,
		EntryDate:   cmd.EntryDate,
		ExitDate:    cmd.ExitDate,
		Status:      cmd.Status,
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventOrderCreated,
		OrderID: order.ID,
		Payload: events.OrderCreatedPayload{
			Name:   order.Name,
			Code:   order.Code,
			Status: order.Status,
		},
	})
	return order, nil
}

// Update overwrites every mutable field of an existing order.
func (s *OrderService) Update(ctx context.Context, cmd UpdateOrderCommand) (*domain.Order, error) {
	order, err := s.core.update(ctx, cmd.OrderID, &domain.Order{
		Name:        cmd.Name,
		Description: cmd.Description,
		Code:        cmd.Code,
		EntryDate:   cmd.EntryDate,
		ExitDate:    cmd.ExitDate,
		Status:      cmd.Status,
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.Event{
		Type:    events.EventOrderUpdated,
		OrderID: order.ID,
		Payload: events.OrderUpdatedPayload{
			Name:   order.Name,
			Status: order.Status,
		},
	})
	return order, nil
}

// Delete removes an existing order.
func (s *OrderService) Delete(ctx context.Context, cmd DeleteOrderCommand) error {
	// Read first so the deletion event can carry the order name.
	order, err := s.core.getByID(ctx, cmd.OrderID)
	if err != nil {
		return err
	}
	if err := s.core.delete(ctx, cmd.OrderID); err != nil {
		return err
	}
	var name string
	if order != nil {
		name = order.Name
	}
	s.publish(ctx, events.Event{
		Type:    events.EventOrderDeleted,
		OrderID: cmd.OrderID,
		Payload: events.OrderDeletedPayload{Name: name},
	})
	return nil
}

// GetByID returns the order or nil when absent.
func (s *OrderService) GetByID(ctx context.Context, query GetOrderByIDQuery) (*domain.Order, error) {
	return s.core.getByID(ctx, query.OrderID)
}

// GetAll returns every order in store order.
func (s *OrderService) GetAll(ctx context.Context, _ GetAllOrdersQuery) ([]domain.Order, error) {
	return s.core.getAll(ctx)
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	// Subscriber failures never fail the command that already committed.
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Error("event publish failed",
			zap.String("event", string(event.Type)),
			zap.Int64("order_id", event.OrderID),
			zap.Error(err))
	}
}
