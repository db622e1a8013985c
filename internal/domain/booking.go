package domain

import (
	"time"

	"github.com/fisiovita/clinic-booking/pkg/types"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsCapacityConsuming reports whether a booking in this status still occupies
// slot capacity. Completed and cancelled bookings free their slot.
func (s BookingStatus) IsCapacityConsuming() bool {
	return s == StatusPending || s == StatusConfirmed
}

// BookingRequest represents a booking submitted through the public site
type BookingRequest struct {
	ID            int64
	Name          string
	Email         *string
	Phone         string
	PreferredDate time.Time
	PreferredTime *types.TimeString // nil for legacy rows not yet scheduled
	ServiceType   string
	Notes         *string
	Status        BookingStatus
	IPAddress     *string
	CreatedAt     time.Time
}

// CountsTowardCapacity reports whether this booking occupies its slot.
// Rows without a preferred time never count.
func (b *BookingRequest) CountsTowardCapacity() bool {
	return b.PreferredTime != nil && b.Status.IsCapacityConsuming()
}

// CanTransitionTo reports whether an admin may move the booking to target.
// Terminal states (completed, cancelled) are frozen.
func (b *BookingRequest) CanTransitionTo(target BookingStatus) bool {
	if !target.IsValid() || target == b.Status {
		return false
	}
	switch b.Status {
	case StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

// BookingsFilter filters the admin bookings listing
type BookingsFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *BookingStatus
}
