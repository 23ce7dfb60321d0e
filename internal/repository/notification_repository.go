package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thecoders/cartunn-backend/internal/domain"
)

// NotificationRepository is the store contract for order notifications.
// Rows are written by the notification writer reacting to order events and
// are read-only for everything else.
type NotificationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Notification, error)
	FindAll(ctx context.Context) ([]domain.Notification, error)
	FindAllByOrderID(ctx context.Context, orderID int64) ([]domain.Notification, error)
	Save(ctx context.Context, notification *domain.Notification) error
}

type notificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository returns a Postgres-backed implementation.
func NewNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepository{pool: pool}
}

func (r *notificationRepository) FindByID(ctx context.Context, id int64) (*domain.Notification, error) {
	const query = `
        SELECT id, order_id, type, description, created_at
        FROM notifications WHERE id=$1`

	var notification domain.Notification
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&notification.ID,
		&notification.OrderID,
		&notification.Type,
		&notification.Description,
		&notification.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindAll(ctx context.Context) ([]domain.Notification, error) {
	const query = `
        SELECT id, order_id, type, description, created_at
        FROM notifications ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (r *notificationRepository) FindAllByOrderID(ctx context.Context, orderID int64) ([]domain.Notification, error) {
	const query = `
        SELECT id, order_id, type, description, created_at
        FROM notifications WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (r *notificationRepository) Save(ctx context.Context, notification *domain.Notification) error {
	const query = `
        INSERT INTO notifications (order_id, type, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		notification.OrderID,
		notification.Type,
		notification.Description,
	).Scan(&notification.ID, &notification.CreatedAt)
}

func scanNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	var result []domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.OrderID,
			&notification.Type,
			&notification.Description,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notification)
	}
	return result, rows.Err()
}
