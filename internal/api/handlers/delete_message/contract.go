package delete_message

import "context"

// MessagesService is the messages service interface
type MessagesService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
