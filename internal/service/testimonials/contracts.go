package testimonials

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// TestimonialRepository is the persistence interface for testimonials
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	ListActive(ctx context.Context, limit int) ([]*domain.Testimonial, error)
	ListAll(ctx context.Context) ([]*domain.Testimonial, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// SettingsService answers whether public testimonials are enabled
type SettingsService interface {
	ShowTestimonials(ctx context.Context) (bool, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
