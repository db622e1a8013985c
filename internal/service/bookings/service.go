package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fisiovita/clinic-booking/internal/domain"
	bookingRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/booking"
)

// Service handles the admin side of booking management
type Service struct {
	repo      BookingRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates a bookings service
func NewService(repo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// List returns booking requests matching the filter, newest first
func (s *Service) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRequest, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: List - status %q", ErrInvalidStatus, *filter.Status)
	}

	items, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

// UpdateStatus moves a booking to the target status. The read and write run
// in one transaction so a concurrent update cannot revive a terminal booking.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.BookingRequest, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: UpdateStatus - status %q", ErrInvalidStatus, status)
	}

	var booking *domain.BookingRequest
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: UpdateStatus - id %d", ErrBookingNotFound, id)
			}
			return fmt.Errorf("%w: UpdateStatus - get booking: %w", ErrInternal, err)
		}

		if !current.CanTransitionTo(status) {
			return fmt.Errorf("%w: UpdateStatus - %s -> %s", ErrForbiddenTransition, current.Status, status)
		}

		if err := s.repo.UpdateStatus(txCtx, id, status); err != nil {
			return fmt.Errorf("%w: UpdateStatus - update booking: %w", ErrInternal, err)
		}

		current.Status = status
		booking = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking %d moved to %s", id, status)
	return booking, nil
}
