package get_availability

import "github.com/fisiovita/clinic-booking/internal/domain"

// Request carries the optional date the visitor already picked
type Request struct {
	SelectedDate string // ISO date, empty when unset
}

// Config is the configuration subset the booking widget needs, including
// the calendar rules the client uses to grey out closed days
type Config struct {
	WorkStart           string
	WorkEnd             string
	SlotIntervalMinutes int
	MaxPerSlot          int
	HorizonDays         int
	EnabledWeekdays     []int
	BlockedDates        []string
}

// Response is the composed availability snapshot for the booking widget
type Response struct {
	Services     []string
	Config       Config
	Dates        []domain.DateAvailability
	SelectedDate string
	Slots        []domain.SlotAvailability
}
