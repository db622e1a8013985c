package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fisiovita/clinic-booking/internal/domain"
	catalogRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/catalog"
)

// Service exposes the active service catalog
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService creates a catalog service
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListActive returns active services ordered by their display position
func (s *Service) ListActive(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// ListActiveTitles returns the titles of active services. Used by the
// booking flows to validate the requested service type.
func (s *Service) ListActiveTitles(ctx context.Context) ([]string, error) {
	titles, err := s.repo.ListActiveTitles(ctx)
	if err != nil {
		s.logger.Error("ListActiveTitles: failed to list service titles: %v", err)
		return nil, fmt.Errorf("%w: ListActiveTitles - repository error: %v", ErrInternal, err)
	}
	return titles, nil
}

// ServiceInput carries the editable fields of a catalog entry
type ServiceInput struct {
	Title       string
	Description *string
	Icon        *string
	OrderIndex  int
	IsActive    bool
}

// ListAll returns the whole catalog for the admin panel, inactive included
func (s *Service) ListAll(ctx context.Context) ([]*domain.Service, error) {
	services, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

// Create adds a service to the catalog
func (s *Service) Create(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	service, err := serviceFromInput(0, input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: failed to store service: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service %d %q added", created.ID, created.Title)
	return created, nil
}

// Update rewrites a service's editable fields
func (s *Service) Update(ctx context.Context, id int64, input ServiceInput) (*domain.Service, error) {
	service, err := serviceFromInput(id, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, service); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: Update - id %d", ErrServiceNotFound, id)
		}
		s.logger.Error("Update: failed to update service %d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service %d %q updated", id, service.Title)
	return service, nil
}

// Delete removes a service from the catalog. Past bookings keep their
// service_type text, only the catalog entry goes away.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return fmt.Errorf("%w: Delete - id %d", ErrServiceNotFound, id)
		}
		s.logger.Error("Delete: failed to delete service %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service %d removed", id)
	return nil
}

func serviceFromInput(id int64, input ServiceInput) (*domain.Service, error) {
	title := sanitize(input.Title, domain.MaxServiceLength)
	if title == "" {
		return nil, ErrMissingTitle
	}

	service := &domain.Service{
		ID:         id,
		Title:      title,
		OrderIndex: input.OrderIndex,
		IsActive:   input.IsActive,
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc != "" {
			service.Description = &desc
		}
	}
	if input.Icon != nil {
		icon := strings.TrimSpace(*input.Icon)
		if icon != "" {
			service.Icon = &icon
		}
	}
	return service, nil
}

func sanitize(value string, maxLen int) string {
	value = strings.Join(strings.Fields(value), " ")
	if len(value) > maxLen {
		value = value[:maxLen]
	}
	return value
}
