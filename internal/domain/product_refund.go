package domain

import "time"

// ProductRefund tracks a product return request. Title is unique.
type ProductRefund struct {
	ID          int64
	Title       string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
