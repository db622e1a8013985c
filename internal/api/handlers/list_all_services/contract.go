package list_all_services

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// CatalogService is the catalog service interface
type CatalogService interface {
	ListAll(ctx context.Context) ([]*domain.Service, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
