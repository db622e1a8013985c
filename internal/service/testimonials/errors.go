package testimonials

import "errors"

var (
	// ErrMissingFields is returned when name or text is empty
	ErrMissingFields = errors.New("testimonials: name and text are required")

	// ErrInvalidRating is returned for a rating outside 1..5
	ErrInvalidRating = errors.New("testimonials: rating must be between 1 and 5")

	// ErrTestimonialNotFound is returned when the testimonial does not exist
	ErrTestimonialNotFound = errors.New("testimonials: testimonial not found")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("testimonials: internal error")
)
