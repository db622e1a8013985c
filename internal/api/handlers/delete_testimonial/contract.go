package delete_testimonial

import "context"

// TestimonialsService is the testimonials service interface
type TestimonialsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
