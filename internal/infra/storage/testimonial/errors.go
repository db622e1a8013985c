package testimonial

import "errors"

var (
	// ErrTestimonialNotFound is returned when a testimonial does not exist
	ErrTestimonialNotFound = errors.New("testimonial.repository: testimonial not found")

	// ErrBuildQuery is returned when SQL query building fails
	ErrBuildQuery = errors.New("testimonial.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails
	ErrExecQuery = errors.New("testimonial.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("testimonial.repository: failed to scan row")
)
