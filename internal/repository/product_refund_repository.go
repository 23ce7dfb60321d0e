package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thecoders/cartunn-backend/internal/domain"
)

// ProductRefundRepository is the store contract for the ProductRefund aggregate.
type ProductRefundRepository interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	ExistsByTitleExcludingID(ctx context.Context, title string, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*domain.ProductRefund, error)
	FindAll(ctx context.Context) ([]domain.ProductRefund, error)
	Save(ctx context.Context, refund *domain.ProductRefund) error
	DeleteByID(ctx context.Context, id int64) error
}

type productRefundRepository struct {
	pool *pgxpool.Pool
}

// NewProductRefundRepository returns a Postgres-backed implementation.
func NewProductRefundRepository(pool *pgxpool.Pool) ProductRefundRepository {
	return &productRefundRepository{pool: pool}
}

func (r *productRefundRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM product_refunds WHERE title=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, title).Scan(&exists)
	return exists, err
}

func (r *productRefundRepository) ExistsByTitleExcludingID(ctx context.Context, title string, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM product_refunds WHERE title=$1 AND id<>$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, title, id).Scan(&exists)
	return exists, err
}

func (r *productRefundRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM product_refunds WHERE id=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *productRefundRepository) FindByID(ctx context.Context, id int64) (*domain.ProductRefund, error) {
	const query = `
        SELECT id, title, description, status, created_at, updated_at
        FROM product_refunds WHERE id=$1`

	var refund domain.ProductRefund
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&refund.ID,
		&refund.Title,
		&refund.Description,
		&refund.Status,
		&refund.CreatedAt,
		&refund.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &refund, nil
}

func (r *productRefundRepository) FindAll(ctx context.Context) ([]domain.ProductRefund, error) {
	const query = `
        SELECT id, title, description, status, created_at, updated_at
        FROM product_refunds ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ProductRefund
	for rows.Next() {
		var refund domain.ProductRefund
		if err := rows.Scan(
			&refund.ID,
			&refund.Title,
			&refund.Description,
			&refund.Status,
			&refund.CreatedAt,
			&refund.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, refund)
	}
	return result, rows.Err()
}

func (r *productRefundRepository) Save(ctx context.Context, refund *domain.ProductRefund) error {
	if refund.ID == 0 {
		const query = `
        INSERT INTO product_refunds (title, description, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

		return r.pool.QueryRow(ctx, query,
			refund.Title,
			refund.Description,
			refund.Status,
		).Scan(&refund.ID, &refund.CreatedAt, &refund.UpdatedAt)
	}

	const query = `
        UPDATE product_refunds SET title=$1, description=$2, status=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		refund.Title,
		refund.Description,
		refund.Status,
		refund.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRefundRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM product_refunds WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
