package bookings

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// BookingRepository is the persistence interface for booking requests
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
