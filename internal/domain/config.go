package domain

import "time"

// BookingConfig is the clinic scheduling configuration, derived per request
// from site_settings rows. Never persisted as a struct: parsing applies the
// defaults and clamping documented in constants.go, so an instance is always
// internally valid except possibly for the work window itself (a bad window
// yields an empty slot grid rather than an error).
type BookingConfig struct {
	WorkStart           string // HH:MM
	WorkEnd             string // HH:MM
	SlotIntervalMinutes int
	MaxPerSlot          int
	HorizonDays         int
	EnabledWeekdays     []int           // 0=Sunday .. 6=Saturday, ascending
	BlockedDates        map[string]bool // ISO dates explicitly closed
}

// IsWeekdayEnabled reports whether the clinic takes bookings on this weekday.
func (c *BookingConfig) IsWeekdayEnabled(weekday time.Weekday) bool {
	for _, wd := range c.EnabledWeekdays {
		if wd == int(weekday) {
			return true
		}
	}
	return false
}

// IsDateBlocked reports whether the ISO date is explicitly closed.
func (c *BookingConfig) IsDateBlocked(isoDate string) bool {
	return c.BlockedDates[isoDate]
}

// IsDateAllowed combines the weekday and blocked-date calendar rules.
func (c *BookingConfig) IsDateAllowed(date time.Time) bool {
	return c.IsWeekdayEnabled(date.Weekday()) && !c.IsDateBlocked(date.Format(DateFormat))
}
