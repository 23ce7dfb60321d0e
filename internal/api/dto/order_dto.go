package dto

import (
	"time"

	"github.com/thecoders/cartunn-backend/internal/domain"
)

// CreateOrderRequest payload for new orders.
type CreateOrderRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        int       `json:"code"`
	EntryDate   time.Time `json:"entryDate"`
	ExitDate    time.Time `json:"exitDate"`
	Status      string    `json:"status"`
}

// UpdateOrderRequest payload for order updates.
type UpdateOrderRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        int       `json:"code"`
	EntryDate   time.Time `json:"entryDate"`
	ExitDate    time.Time `json:"exitDate"`
	Status      string    `json:"status"`
}

// OrderResponse representation of an order.
type OrderResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Code        int       `json:"code"`
	EntryDate   time.Time `json:"entryDate"`
	ExitDate    time.Time `json:"exitDate"`
	Status      string    `json:"status"`
}

// NewOrderResponse maps a domain order to its response shape.
func NewOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		Name:        order.Name,
		Description: order.Description,
		Code:        order.Code,
		EntryDate:   order.EntryDate,
		ExitDate:    order.ExitDate,
		Status:      order.Status,
	}
}

// NewOrderResponseList maps a slice of orders.
func NewOrderResponseList(orders []domain.Order) []OrderResponse {
	result := make([]OrderResponse, len(orders))
	for i := range orders {
		result[i] = NewOrderResponse(&orders[i])
	}
	return result
}
