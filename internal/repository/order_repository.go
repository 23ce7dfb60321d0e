package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thecoders/cartunn-backend/internal/domain"
)

// OrderRepository is the store contract for the Order aggregate.
type OrderRepository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameExcludingID(ctx context.Context, name string, id int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	DeleteByID(ctx context.Context, id int64) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM orders WHERE name=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, name).Scan(&exists)
	return exists, err
}

func (r *orderRepository) ExistsByNameExcludingID(ctx context.Context, name string, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM orders WHERE name=$1 AND id<>$2)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, name, id).Scan(&exists)
	return exists, err
}

func (r *orderRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, name, description, code, entry_date, exit_date, status, created_at, updated_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.Name,
		&order.Description,
		&order.Code,
		&order.EntryDate,
		&order.ExitDate,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	const query = `
        SELECT id, name, description, code, entry_date, exit_date, status, created_at, updated_at
        FROM orders ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.Name,
			&order.Description,
			&order.Code,
			&order.EntryDate,
			&order.ExitDate,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	return result, rows.Err()
}

func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order.ID == 0 {
		const query = `
        INSERT INTO orders (name, description, code, entry_date, exit_date, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

		return r.pool.QueryRow(ctx, query,
			order.Name,
			order.Description,
			order.Code,
			order.EntryDate,
			order.ExitDate,
			order.Status,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	}

	const query = `
        UPDATE orders SET name=$1, description=$2, code=$3, entry_date=$4, exit_date=$5, status=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		order.Name,
		order.Description,
		order.Code,
		order.EntryDate,
		order.ExitDate,
		order.Status,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
