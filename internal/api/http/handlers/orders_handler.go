package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thecoders/cartunn-backend/internal/api/dto"
	"github.com/thecoders/cartunn-backend/internal/service"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	service *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// CreateOrder POST /api/v1/orders.
func (h *OrdersHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	order, err := h.service.Create(c.UserContext(), service.CreateOrderCommand{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		EntryDate:   req.EntryDate,
		ExitDate:    req.ExitDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// ListOrders GET /api/v1/orders.
func (h *OrdersHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAll(c.UserContext(), service.GetAllOrdersQuery{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponseList(orders)})
}

// GetOrder GET /api/v1/orders/:orderId.
func (h *OrdersHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "orderId")
	if err != nil {
		return err
	}
	order, err := h.service.GetByID(c.UserContext(), service.GetOrderByIDQuery{OrderID: id})
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.NewNotFound("order", id)
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// UpdateOrder PUT /api/v1/orders/:orderId.
func (h *OrdersHandler) UpdateOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "orderId")
	if err != nil {
		return err
	}
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	order, err := h.service.Update(c.UserContext(), service.UpdateOrderCommand{
		OrderID:     id,
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		EntryDate:   req.EntryDate,
		ExitDate:    req.ExitDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// DeleteOrder DELETE /api/v1/orders/:orderId.
func (h *OrdersHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "orderId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), service.DeleteOrderCommand{OrderID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(name+" must be a positive integer", nil)
	}
	return id, nil
}
