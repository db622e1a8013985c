package testimonials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fisiovita/clinic-booking/internal/domain"
	testimonialRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/testimonial"
)

// publicListLimit caps how many testimonials the landing page shows
const publicListLimit = 10

// SubmitInput carries a testimonial submission
type SubmitInput struct {
	Name   string
	Text   string
	Rating int
}

// Service handles testimonial submissions and the public listing
type Service struct {
	repo     TestimonialRepository
	settings SettingsService
	logger   Logger
}

// NewService creates a testimonials service
func NewService(repo TestimonialRepository, settings SettingsService, logger Logger) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
		logger:   logger,
	}
}

// Submit validates and stores a testimonial. New testimonials are inactive
// until an admin approves them.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		Name:   sanitize(input.Name, domain.MaxNameLength),
		Text:   sanitize(input.Text, domain.MaxTestimonialLength),
		Rating: input.Rating,
	}

	if t.Name == "" || t.Text == "" {
		return nil, fmt.Errorf("%w: Submit", ErrMissingFields)
	}
	if !t.HasValidRating() {
		return nil, fmt.Errorf("%w: Submit - rating %d", ErrInvalidRating, t.Rating)
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		s.logger.Error("Submit: failed to store testimonial: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: testimonial %d received from %s", created.ID, created.Name)
	return created, nil
}

// ListPublic returns approved testimonials for the landing page. When the
// show_testimonials setting is off it returns an empty list.
func (s *Service) ListPublic(ctx context.Context) ([]*domain.Testimonial, error) {
	enabled, err := s.settings.ShowTestimonials(ctx)
	if err != nil {
		s.logger.Error("ListPublic: failed to read settings: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - settings error: %v", ErrInternal, err)
	}
	if !enabled {
		return []*domain.Testimonial{}, nil
	}

	items, err := s.repo.ListActive(ctx, publicListLimit)
	if err != nil {
		s.logger.Error("ListPublic: failed to list testimonials: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

func sanitize(value string, maxLen int) string {
	value = strings.Join(strings.Fields(value), " ")
	if len(value) > maxLen {
		value = value[:maxLen]
	}
	return value
}

// ListAll returns every testimonial for the moderation queue, newest first
func (s *Service) ListAll(ctx context.Context) ([]*domain.Testimonial, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to list testimonials: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// Approve publishes a testimonial on the landing page
func (s *Service) Approve(ctx context.Context, id int64) error {
	if err := s.repo.SetActive(ctx, id, true); err != nil {
		if errors.Is(err, testimonialRepo.ErrTestimonialNotFound) {
			return fmt.Errorf("%w: Approve - id %d", ErrTestimonialNotFound, id)
		}
		s.logger.Error("Approve: failed to approve testimonial %d: %v", id, err)
		return fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Approve: testimonial %d published", id)
	return nil
}

// Delete removes a testimonial
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, testimonialRepo.ErrTestimonialNotFound) {
			return fmt.Errorf("%w: Delete - id %d", ErrTestimonialNotFound, id)
		}
		s.logger.Error("Delete: failed to delete testimonial %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: testimonial %d removed", id)
	return nil
}
