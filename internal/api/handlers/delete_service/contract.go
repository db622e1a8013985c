package delete_service

import "context"

// CatalogService is the catalog service interface
type CatalogService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
