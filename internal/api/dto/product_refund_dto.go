package dto

import "github.com/thecoders/cartunn-backend/internal/domain"

// CreateProductRefundRequest payload for new refunds.
type CreateProductRefundRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateProductRefundRequest payload for refund updates.
type UpdateProductRefundRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ProductRefundResponse representation of a refund.
type ProductRefundResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// NewProductRefundResponse maps a domain refund to its response shape.
func NewProductRefundResponse(refund *domain.ProductRefund) ProductRefundResponse {
	return ProductRefundResponse{
		ID:          refund.ID,
		Title:       refund.Title,
		Description: refund.Description,
		Status:      refund.Status,
	}
}

// NewProductRefundResponseList maps a slice of refunds.
func NewProductRefundResponseList(refunds []domain.ProductRefund) []ProductRefundResponse {
	result := make([]ProductRefundResponse, len(refunds))
	for i := range refunds {
		result[i] = NewProductRefundResponse(&refunds[i])
	}
	return result
}
