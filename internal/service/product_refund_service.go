package service

import (
	"context"

	"github.com/thecoders/cartunn-backend/internal/domain"
	"github.com/thecoders/cartunn-backend/internal/repository"
)

// CreateProductRefundCommand carries all field values for a new refund.
type CreateProductRefundCommand struct {
	Title       string
	Description string
	Status      string
}

// UpdateProductRefundCommand carries the target identity plus all mutable fields.
type UpdateProductRefundCommand struct {
	ProductRefundID int64
	Title           string
	Description     string
	Status          string
}

// DeleteProductRefundCommand targets a refund for removal.
type DeleteProductRefundCommand struct {
	ProductRefundID int64
}

// GetProductRefundByIDQuery requests a single refund.
type GetProductRefundByIDQuery struct {
	ProductRefundID int64
}

// GetAllProductRefundsQuery requests every refund.
type GetAllProductRefundsQuery struct{}

// ProductRefundService handles product refund commands and queries.
type ProductRefundService struct {
	core crudCore[domain.ProductRefund]
}

// NewProductRefundService constructs the service.
func NewProductRefundService(refunds repository.ProductRefundRepository) *ProductRefundService {
	return &ProductRefundService{
		core: crudCore[domain.ProductRefund]{
			kind:                   "product refund",
			keyOf:                  func(r *domain.ProductRefund) string { return r.Title },
			existsByKey:            refunds.ExistsByTitle,
			existsByKeyExcludingID: refunds.ExistsByTitleExcludingID,
			existsByID:             refunds.ExistsByID,
			findByID:               refunds.FindByID,
			findAll:                refunds.FindAll,
			save:                   refunds.Save,
			deleteByID:             refunds.DeleteByID,
			apply: func(dst, src *domain.ProductRefund) {
				dst.Title = src.Title
				dst.Description = src.Description
				dst.Status = src.Status
			},
		},
	}
}

// Create registers a new refund after checking title uniqueness.
func (s *ProductRefundService) Create(ctx context.Context, cmd CreateProductRefundCommand) (*domain.ProductRefund, error) {
	return s.core.create(ctx, &domain.ProductRefund{
		Title:       cmd.Title,
		Description: cmd.Description,
		Status:      cmd.Status,
	})
}

// Update overwrites every mutable field of an existing refund.
func (s *ProductRefundService) Update(ctx context.Context, cmd UpdateProductRefundCommand) (*domain.ProductRefund, error) {
	return s.core.update(ctx, cmd.ProductRefundID, &domain.ProductRefund{
		Title:       cmd.Title,
		Description: cmd.Description,
		Status:      cmd.Status,
	})
}

// Delete removes an existing refund.
func (s *ProductRefundService) Delete(ctx context.Context, cmd DeleteProductRefundCommand) error {
	return s.core.delete(ctx, cmd.ProductRefundID)
}

// GetByID returns the refund or nil when absent.
func (s *ProductRefundService) GetByID(ctx context.Context, query GetProductRefundByIDQuery) (*domain.ProductRefund, error) {
	return s.core.getByID(ctx, query.ProductRefundID)
}

// GetAll returns every refund in store order.
func (s *ProductRefundService) GetAll(ctx context.Context, _ GetAllProductRefundsQuery) ([]domain.ProductRefund, error) {
	return s.core.getAll(ctx)
}
