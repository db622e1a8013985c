package list_testimonials

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// TestimonialsService is the testimonials service interface
type TestimonialsService interface {
	ListPublic(ctx context.Context) ([]*domain.Testimonial, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
