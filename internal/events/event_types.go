package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated EventType = "order_created"
	EventOrderUpdated EventType = "order_updated"
	EventOrderDeleted EventType = "order_deleted"
)

// Event represents an order lifecycle event emitted by the command side.
// Payload carries one of the payload structs below by value, never as a
// pointer; subscribers type-assert on the value types.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   int64       `json:"order_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	Name   string `json:"name"`
	Code   int    `json:"code"`
	Status string `json:"status"`
}

// OrderUpdatedPayload payload.
type OrderUpdatedPayload struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// OrderDeletedPayload payload.
type OrderDeletedPayload struct {
	Name string `json:"name"`
}
