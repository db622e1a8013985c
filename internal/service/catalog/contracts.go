package catalog

import (
	"context"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// CatalogRepository is the persistence interface for clinic services
type CatalogRepository interface {
	ListActive(ctx context.Context) ([]*domain.Service, error)
	ListActiveTitles(ctx context.Context) ([]string, error)
	ListAll(ctx context.Context) ([]*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
