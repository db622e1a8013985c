package get_availability

import "errors"

var (
	// ErrInvalidDate is returned when the requested date is not YYYY-MM-DD
	ErrInvalidDate = errors.New("get_availability: invalid date format")

	// ErrInternal is returned on storage or settings failures
	ErrInternal = errors.New("get_availability: internal error")
)
