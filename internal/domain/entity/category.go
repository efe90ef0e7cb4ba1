package entity

import "time"

// Category agrupa materiales (ej. "Building Materials", "Safety Equipment").
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}
