package get_availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// UseCase composes the availability snapshot shown by the booking widget
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsService
	catalog      ServiceCatalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsService,
	catalog ServiceCatalog,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the availability snapshot: the bookable date window with
// per-date counts, the slot breakdown for the selected date, the active
// services and the configuration echo. Everything derives from one usage
// aggregation, so the per-date counts and the slot list always agree.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Validate the requested date, when present. Parsed in the clock's
	// location so it compares against local midnights, not UTC ones.
	var requested *time.Time
	if req.SelectedDate != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.SelectedDate, now.Location())
		if err != nil {
			uc.logger.Warn("GetAvailability: invalid date %q", req.SelectedDate)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.SelectedDate)
		}
		requested = &parsed
	}

	// 2. Derive the booking configuration and the slot grid
	cfg, err := uc.settings.BookingConfig(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: failed to load config: %v", ErrInternal, err)
	}
	grid := domain.BuildTimeSlots(cfg)

	// 3. One usage aggregation over the whole window
	today := domain.Today(now)
	lastDate := today.AddDate(0, 0, cfg.HorizonDays)

	usageRows, err := uc.bookingRepo.CountByDateRange(ctx, today, lastDate)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}
	usage := domain.UsageMap(usageRows)

	// 4. Per-date availability over today .. today+horizon inclusive
	dates := make([]domain.DateAvailability, 0, cfg.HorizonDays+1)
	for i := 0; i <= cfg.HorizonDays; i++ {
		date := today.AddDate(0, 0, i)
		iso := date.Format(domain.DateFormat)

		entry := domain.DateAvailability{Date: iso}
		if cfg.IsDateAllowed(date) {
			entry.TotalSlots = len(grid)
			for _, slot := range grid {
				if usage[domain.SlotKey{Date: iso, Time: slot}] < cfg.MaxPerSlot {
					entry.AvailableSlots++
				}
			}
			entry.Available = entry.AvailableSlots > 0
		}
		dates = append(dates, entry)
	}

	// 5. Resolve the selected date: the caller's when inside the window,
	// otherwise the first available date, otherwise the first window date
	selectedDate := ""
	if requested != nil && !requested.Before(today) && !requested.After(lastDate) {
		selectedDate = requested.Format(domain.DateFormat)
	} else {
		for _, d := range dates {
			if d.Available {
				selectedDate = d.Date
				break
			}
		}
		if selectedDate == "" && len(dates) > 0 {
			selectedDate = dates[0].Date
		}
	}

	// 6. Slot breakdown for the selected date
	slots := []domain.SlotAvailability{}
	if selectedDate != "" {
		selected, _ := time.ParseInLocation(domain.DateFormat, selectedDate, now.Location())
		if cfg.IsDateAllowed(selected) {
			slots = make([]domain.SlotAvailability, 0, len(grid))
			for _, slot := range grid {
				booked := usage[domain.SlotKey{Date: selectedDate, Time: slot}]
				remaining := cfg.MaxPerSlot - booked
				if remaining < 0 {
					remaining = 0
				}
				slots = append(slots, domain.SlotAvailability{
					Time:      slot,
					Available: remaining > 0,
					Booked:    booked,
					Remaining: remaining,
				})
			}
		}
	}

	// 7. Active services for the booking form
	services, err := uc.catalog.ListActiveTitles(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: %d dates, selected=%s, %d slots",
		len(dates), selectedDate, len(slots))

	blockedDates := make([]string, 0, len(cfg.BlockedDates))
	for iso := range cfg.BlockedDates {
		blockedDates = append(blockedDates, iso)
	}
	sort.Strings(blockedDates)

	return &Response{
		Services: services,
		Config: Config{
			WorkStart:           cfg.WorkStart,
			WorkEnd:             cfg.WorkEnd,
			SlotIntervalMinutes: cfg.SlotIntervalMinutes,
			MaxPerSlot:          cfg.MaxPerSlot,
			HorizonDays:         cfg.HorizonDays,
			EnabledWeekdays:     cfg.EnabledWeekdays,
			BlockedDates:        blockedDates,
		},
		Dates:        dates,
		SelectedDate: selectedDate,
		Slots:        slots,
	}, nil
}
