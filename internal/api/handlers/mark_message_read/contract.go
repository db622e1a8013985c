package mark_message_read

import "context"

// MessagesService is the contact message service interface
type MessagesService interface {
	MarkRead(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
