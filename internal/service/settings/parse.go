package settings

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// parseBookingConfig turns raw site_settings values into a validated
// BookingConfig. Malformed values are substituted with the documented
// defaults and never surface to the caller; numeric values are clamped to
// their business bounds. Pure function over the raw map.
func parseBookingConfig(raw map[string]string) *domain.BookingConfig {
	cfg := &domain.BookingConfig{
		WorkStart:           parseWorkTime(raw[domain.SettingWorkStart], domain.DefaultWorkStart),
		WorkEnd:             parseWorkTime(raw[domain.SettingWorkEnd], domain.DefaultWorkEnd),
		SlotIntervalMinutes: parseClampedInt(raw[domain.SettingSlotIntervalMinutes], domain.DefaultSlotIntervalMinutes, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes),
		MaxPerSlot:          parseClampedInt(raw[domain.SettingMaxPerSlot], domain.DefaultMaxPerSlot, domain.MinMaxPerSlot, domain.MaxMaxPerSlot),
		HorizonDays:         parseClampedInt(raw[domain.SettingHorizonDays], domain.DefaultHorizonDays, domain.MinHorizonDays, domain.MaxHorizonDays),
		EnabledWeekdays:     parseWeekdays(raw[domain.SettingEnabledWeekdays]),
		BlockedDates:        parseBlockedDates(raw[domain.SettingBlockedDates]),
	}
	return cfg
}

// parseWorkTime keeps the raw value if it looks like HH:MM, otherwise falls
// back. A syntactically valid but inconsistent window (start >= end) is left
// as is: the slot grid builder answers it with an empty grid.
func parseWorkTime(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if _, err := time.Parse(domain.TimeFormat, value); err != nil {
		return fallback
	}
	return value
}

func parseClampedInt(value string, fallback, min, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		n = fallback
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// parseWeekdays reads a CSV of weekday numbers (0=Sunday). Out-of-range and
// unparseable entries are dropped; if nothing survives, the default weekday
// set applies so the configuration never has zero bookable weekdays.
func parseWeekdays(value string) []int {
	seen := make(map[int]bool)
	for _, part := range strings.Split(value, ",") {
		wd, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || wd < 0 || wd > 6 {
			continue
		}
		seen[wd] = true
	}

	if len(seen) == 0 {
		return append([]int(nil), domain.DefaultEnabledWeekdays...)
	}

	weekdays := make([]int, 0, len(seen))
	for wd := range seen {
		weekdays = append(weekdays, wd)
	}
	sort.Ints(weekdays)
	return weekdays
}

// parseBlockedDates reads a CSV of ISO dates, dropping anything malformed.
func parseBlockedDates(value string) map[string]bool {
	blocked := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		date := strings.TrimSpace(part)
		if date == "" {
			continue
		}
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			continue
		}
		blocked[date] = true
	}
	return blocked
}

// isTruthy mirrors the loose boolean convention of the settings table
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
