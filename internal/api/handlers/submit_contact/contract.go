package submit_contact

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/internal/service/messages"
)

// MessagesService is the contact message service interface
type MessagesService interface {
	Submit(ctx context.Context, input messages.SubmitInput) (*domain.ContactMessage, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
