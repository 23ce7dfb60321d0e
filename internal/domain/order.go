package domain

import "time"

// Order is the aggregate for purchase orders. Name is unique among live
// orders.
type Order struct {
	ID          int64
	Name        string
	Description string
	Code        int
	EntryDate   time.Time
	ExitDate    time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
