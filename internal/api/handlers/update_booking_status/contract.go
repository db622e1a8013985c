package update_booking_status

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// BookingsService is the admin bookings service interface
type BookingsService interface {
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.BookingRequest, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
