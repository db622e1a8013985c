package create_booking

import "errors"

var (
	// ErrMissingFields is returned when a required field is empty
	ErrMissingFields = errors.New("create_booking: name, phone, date, time and service are required")

	// ErrInvalidInput is returned for malformed date, time or email values
	ErrInvalidInput = errors.New("create_booking: invalid input")

	// ErrUnknownService is returned when the service is not in the active
	// catalog
	ErrUnknownService = errors.New("create_booking: unknown or inactive service")

	// ErrTimeOutsideWindow is returned when the time is not a grid slot
	ErrTimeOutsideWindow = errors.New("create_booking: time outside working hours")

	// ErrDateOutsideWindow is returned when the date is in the past or
	// beyond the booking horizon
	ErrDateOutsideWindow = errors.New("create_booking: date outside booking window")

	// ErrDateNotBookable is returned for disabled weekdays and blocked dates
	ErrDateNotBookable = errors.New("create_booking: date not bookable")

	// ErrSlotFull is returned when the slot has no remaining capacity
	ErrSlotFull = errors.New("create_booking: slot is fully booked")

	// ErrInternal is returned on storage or settings failures
	ErrInternal = errors.New("create_booking: internal error")
)
