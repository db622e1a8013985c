package messages

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// MessageRepository is the persistence interface for contact messages
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context, onlyUnread bool) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
