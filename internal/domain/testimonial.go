package domain

import "time"

// Testimonial rating bounds
const (
	MinTestimonialRating = 1
	MaxTestimonialRating = 5
	MaxTestimonialLength = 600
)

// Testimonial is a client review shown on the landing page
type Testimonial struct {
	ID        int64
	Name      string
	Text      string
	Rating    int
	IsActive  bool
	CreatedAt time.Time
}

// HasValidRating reports whether the rating is within bounds
func (t *Testimonial) HasValidRating() bool {
	return t.Rating >= MinTestimonialRating && t.Rating <= MaxTestimonialRating
}
