package get_availability

import (
	"context"
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// BookingRepository is the booking usage interface
type BookingRepository interface {
	// CountByDateRange aggregates capacity-consuming bookings per (date, time)
	CountByDateRange(ctx context.Context, from, to time.Time) ([]domain.SlotUsage, error)
}

// SettingsService derives the booking configuration
type SettingsService interface {
	BookingConfig(ctx context.Context) (*domain.BookingConfig, error)
}

// ServiceCatalog lists the bookable service titles
type ServiceCatalog interface {
	ListActiveTitles(ctx context.Context) ([]string, error)
}

// TimeProvider provides the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
