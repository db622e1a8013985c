package list_messages

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// MessagesService is the contact message service interface
type MessagesService interface {
	List(ctx context.Context, onlyUnread bool) ([]*domain.ContactMessage, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
