package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/thecoders/cartunn-backend/internal/api/dto"
	"github.com/thecoders/cartunn-backend/internal/service"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

// ProductRefundsHandler manages product refund endpoints.
type ProductRefundsHandler struct {
	service *service.ProductRefundService
}

// NewProductRefundsHandler constructs handler.
func NewProductRefundsHandler(refundService *service.ProductRefundService) *ProductRefundsHandler {
	return &ProductRefundsHandler{service: refundService}
}

// CreateProductRefund POST /api/v1/product-refund.
func (h *ProductRefundsHandler) CreateProductRefund(c *fiber.Ctx) error {
	var req dto.CreateProductRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	refund, err := h.service.Create(c.UserContext(), service.CreateProductRefundCommand{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewProductRefundResponse(refund)})
}

// ListProductRefunds GET /api/v1/product-refund.
func (h *ProductRefundsHandler) ListProductRefunds(c *fiber.Ctx) error {
	refunds, err := h.service.GetAll(c.UserContext(), service.GetAllProductRefundsQuery{})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductRefundResponseList(refunds)})
}

// GetProductRefund GET /api/v1/product-refund/:productRefundId.
func (h *ProductRefundsHandler) GetProductRefund(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "productRefundId")
	if err != nil {
		return err
	}
	refund, err := h.service.GetByID(c.UserContext(), service.GetProductRefundByIDQuery{ProductRefundID: id})
	if err != nil {
		return err
	}
	if refund == nil {
		return apperrors.NewNotFound("product refund", id)
	}
	return c.JSON(fiber.Map{"data": dto.NewProductRefundResponse(refund)})
}

// UpdateProductRefund PUT /api/v1/product-refund/:productRefundId.
func (h *ProductRefundsHandler) UpdateProductRefund(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "productRefundId")
	if err != nil {
		return err
	}
	var req dto.UpdateProductRefundRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}

	refund, err := h.service.Update(c.UserContext(), service.UpdateProductRefundCommand{
		ProductRefundID: id,
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductRefundResponse(refund)})
}

// DeleteProductRefund DELETE /api/v1/product-refund/:productRefundId.
func (h *ProductRefundsHandler) DeleteProductRefund(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "productRefundId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), service.DeleteProductRefundCommand{ProductRefundID: id}); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
