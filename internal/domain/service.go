package domain

import "time"

// Service represents a sellable clinic service shown on the landing page.
// Only active services can be selected when booking.
type Service struct {
	ID          int64
	Title       string
	Description *string
	Icon        *string
	OrderIndex  int
	IsActive    bool
	CreatedAt   time.Time
}
