package create_service

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/internal/service/catalog"
)

// CatalogService is the catalog service interface
type CatalogService interface {
	Create(ctx context.Context, input catalog.ServiceInput) (*domain.Service, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
