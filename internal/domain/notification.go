package domain

import "time"

// Notification records an order lifecycle event visible to the customer.
// Many notifications reference one order; the order does not own them back.
type Notification struct {
	ID          int64
	OrderID     int64
	Type        string
	Description string
	CreatedAt   time.Time
}
