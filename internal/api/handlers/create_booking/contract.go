package create_booking

import (
	"context"

	createBooking "github.com/fisiovita/clinic-booking/internal/usecase/create_booking"
)

// CreateBookingUseCase is the use case interface
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
