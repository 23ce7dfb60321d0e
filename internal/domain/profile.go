package domain

import "time"

// Profile holds customer contact data. Email is unique.
type Profile struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
