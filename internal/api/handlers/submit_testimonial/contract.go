package submit_testimonial

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/internal/service/testimonials"
)

// TestimonialsService is the testimonials service interface
type TestimonialsService interface {
	Submit(ctx context.Context, input testimonials.SubmitInput) (*domain.Testimonial, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
