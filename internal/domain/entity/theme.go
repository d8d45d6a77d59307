package entity

import "time"

// Theme groups routes by mood or scenery (e.g. riverside, forest).
type Theme struct {
	ID          int
	Title       string
	Description string
	CreatedAt   time.Time
}
