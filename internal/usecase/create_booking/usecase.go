package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/internal/integrations/notifier"
)

// notifyTimeout bounds the fire-and-forget webhook delivery
const notifyTimeout = 10 * time.Second

// UseCase admits public booking requests. Checks run in a fixed order so a
// request failing several rules always gets the same answer; the capacity
// check and the insert share one serializable transaction with the slot rows
// locked, so two concurrent requests cannot both take the last place.
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsService
	catalog      ServiceCatalog
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsService,
	catalog ServiceCatalog,
	notifierClient Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		catalog:      catalog,
		notifier:     notifierClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the admission checks and stores the booking as pending
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Presence and format
	adm, err := validateRequest(req, now.Location())
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: request for %s %s, service=%s",
		adm.date.Format(domain.DateFormat), adm.slot, adm.service)

	cfg, err := uc.settings.BookingConfig(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: failed to load config: %v", ErrInternal, err)
	}

	// 2. Service must be in the active catalog
	titles, err := uc.catalog.ListActiveTitles(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}
	if !containsTitle(titles, adm.service) {
		uc.logger.Warn("CreateBooking: unknown service %q", adm.service)
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, adm.service)
	}

	// 3. Time must be a grid slot
	grid := domain.BuildTimeSlots(cfg)
	if !domain.GridContains(grid, adm.slot) {
		uc.logger.Warn("CreateBooking: time %s outside slot grid", adm.slot)
		return nil, fmt.Errorf("%w: %s", ErrTimeOutsideWindow, adm.slot)
	}

	// 4. Date must be inside the window and on a bookable day
	today := domain.Today(now)
	if adm.date.Before(today) || adm.date.After(today.AddDate(0, 0, cfg.HorizonDays)) {
		uc.logger.Warn("CreateBooking: date %s outside booking window", adm.date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrDateOutsideWindow, adm.date.Format(domain.DateFormat))
	}
	if !cfg.IsDateAllowed(adm.date) {
		uc.logger.Warn("CreateBooking: date %s not bookable", adm.date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: %s", ErrDateNotBookable, adm.date.Format(domain.DateFormat))
	}

	// 5. Capacity check and insert under one transaction
	var created *domain.BookingRequest
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetForSlot(txCtx, adm.date, adm.slot)
		if err != nil {
			return fmt.Errorf("%w: failed to load slot bookings: %w", ErrInternal, err)
		}

		booked := 0
		for _, b := range existing {
			if b.CountsTowardCapacity() {
				booked++
			}
		}
		if booked >= cfg.MaxPerSlot {
			return fmt.Errorf("%w: %s %s", ErrSlotFull, adm.date.Format(domain.DateFormat), adm.slot)
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.BookingRequest{
			Name:          adm.name,
			Email:         adm.email,
			Phone:         adm.phone,
			PreferredDate: adm.date,
			PreferredTime: &adm.slot,
			ServiceType:   adm.service,
			Notes:         adm.notes,
			Status:        domain.StatusPending,
			IPAddress:     req.IPAddress,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: admission failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking %d admitted for %s %s",
		created.ID, adm.date.Format(domain.DateFormat), adm.slot)

	// Notification is best effort and never blocks the response
	if uc.settings.EmailNotificationsEnabled(ctx) {
		go uc.notify(created)
	}

	return &Response{
		ID:            created.ID,
		Name:          created.Name,
		PreferredDate: created.PreferredDate.Format(domain.DateFormat),
		PreferredTime: created.PreferredTime.String(),
		ServiceType:   created.ServiceType,
		Status:        created.Status,
		CreatedAt:     created.CreatedAt,
	}, nil
}

func (uc *UseCase) notify(booking *domain.BookingRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	event := &notifier.AppointmentEvent{
		BookingID:     booking.ID,
		Name:          booking.Name,
		Email:         booking.Email,
		Phone:         booking.Phone,
		PreferredDate: booking.PreferredDate.Format(domain.DateFormat),
		PreferredTime: booking.PreferredTime.String(),
		ServiceType:   booking.ServiceType,
		Notes:         booking.Notes,
	}

	if err := uc.notifier.AppointmentCreated(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: notification for booking %d failed: %v", booking.ID, err)
	}
}

func containsTitle(titles []string, title string) bool {
	for _, t := range titles {
		if t == title {
			return true
		}
	}
	return false
}
