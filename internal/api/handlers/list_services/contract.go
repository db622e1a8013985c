package list_services

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// CatalogService is the service catalog interface
type CatalogService interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
