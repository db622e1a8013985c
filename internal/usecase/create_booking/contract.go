package create_booking

import (
	"context"
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/internal/integrations/notifier"
	"github.com/fisiovita/clinic-booking/pkg/types"
)

// BookingRepository is the persistence interface for booking admission
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error)
	// GetForSlot returns the bookings targeting one (date, time) slot.
	// Inside a transaction the rows are locked until commit.
	GetForSlot(ctx context.Context, date time.Time, slot types.TimeString) ([]*domain.BookingRequest, error)
}

// SettingsService derives the booking configuration
type SettingsService interface {
	BookingConfig(ctx context.Context) (*domain.BookingConfig, error)
	EmailNotificationsEnabled(ctx context.Context) bool
}

// ServiceCatalog lists the bookable service titles
type ServiceCatalog interface {
	ListActiveTitles(ctx context.Context) ([]string, error)
}

// Notifier delivers the appointment-created event
type Notifier interface {
	AppointmentCreated(ctx context.Context, event *notifier.AppointmentEvent) error
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
