package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidStatus is returned for an unknown target status
	ErrInvalidStatus = errors.New("bookings: invalid status")

	// ErrForbiddenTransition is returned when the booking is in a terminal
	// state or already has the target status
	ErrForbiddenTransition = errors.New("bookings: status transition not allowed")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("bookings: internal error")
)
