package list_bookings

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// BookingsService is the admin bookings service interface
type BookingsService interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRequest, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
