package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

func TestParseBookingConfig_Defaults(t *testing.T) {
	cfg := parseBookingConfig(map[string]string{})

	assert.Equal(t, domain.DefaultWorkStart, cfg.WorkStart)
	assert.Equal(t, domain.DefaultWorkEnd, cfg.WorkEnd)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, cfg.SlotIntervalMinutes)
	assert.Equal(t, domain.DefaultMaxPerSlot, cfg.MaxPerSlot)
	assert.Equal(t, domain.DefaultHorizonDays, cfg.HorizonDays)
	assert.Equal(t, domain.DefaultEnabledWeekdays, cfg.EnabledWeekdays)
	assert.Empty(t, cfg.BlockedDates)
}

func TestParseBookingConfig_ValidValues(t *testing.T) {
	cfg := parseBookingConfig(map[string]string{
		domain.SettingWorkStart:           "09:00",
		domain.SettingWorkEnd:             "17:00",
		domain.SettingSlotIntervalMinutes: "30",
		domain.SettingMaxPerSlot:          "3",
		domain.SettingHorizonDays:         "30",
		domain.SettingEnabledWeekdays:     "1,3,5,6",
		domain.SettingBlockedDates:        "2026-12-25,2026-01-01",
	})

	assert.Equal(t, "09:00", cfg.WorkStart)
	assert.Equal(t, "17:00", cfg.WorkEnd)
	assert.Equal(t, 30, cfg.SlotIntervalMinutes)
	assert.Equal(t, 3, cfg.MaxPerSlot)
	assert.Equal(t, 30, cfg.HorizonDays)
	assert.Equal(t, []int{1, 3, 5, 6}, cfg.EnabledWeekdays)
	assert.True(t, cfg.IsDateBlocked("2026-12-25"))
	assert.True(t, cfg.IsDateBlocked("2026-01-01"))
	assert.False(t, cfg.IsDateBlocked("2026-06-15"))
}

func TestParseBookingConfig_Clamping(t *testing.T) {
	testCases := []struct {
		name     string
		key      string
		value    string
		check    func(cfg *domain.BookingConfig) int
		expected int
	}{
		{
			name:     "interval below minimum",
			key:      domain.SettingSlotIntervalMinutes,
			value:    "5",
			check:    func(cfg *domain.BookingConfig) int { return cfg.SlotIntervalMinutes },
			expected: domain.MinSlotIntervalMinutes,
		},
		{
			name:     "interval above maximum",
			key:      domain.SettingSlotIntervalMinutes,
			value:    "480",
			check:    func(cfg *domain.BookingConfig) int { return cfg.SlotIntervalMinutes },
			expected: domain.MaxSlotIntervalMinutes,
		},
		{
			name:     "max per slot below minimum",
			key:      domain.SettingMaxPerSlot,
			value:    "0",
			check:    func(cfg *domain.BookingConfig) int { return cfg.MaxPerSlot },
			expected: domain.MinMaxPerSlot,
		},
		{
			name:     "max per slot above maximum",
			key:      domain.SettingMaxPerSlot,
			value:    "99",
			check:    func(cfg *domain.BookingConfig) int { return cfg.MaxPerSlot },
			expected: domain.MaxMaxPerSlot,
		},
		{
			name:     "horizon below minimum",
			key:      domain.SettingHorizonDays,
			value:    "1",
			check:    func(cfg *domain.BookingConfig) int { return cfg.HorizonDays },
			expected: domain.MinHorizonDays,
		},
		{
			name:     "horizon above maximum",
			key:      domain.SettingHorizonDays,
			value:    "500",
			check:    func(cfg *domain.BookingConfig) int { return cfg.HorizonDays },
			expected: domain.MaxHorizonDays,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := parseBookingConfig(map[string]string{tc.key: tc.value})
			assert.Equal(t, tc.expected, tc.check(cfg))
		})
	}
}

func TestParseBookingConfig_MalformedValues(t *testing.T) {
	cfg := parseBookingConfig(map[string]string{
		domain.SettingWorkStart:           "25:00",
		domain.SettingWorkEnd:             "abc",
		domain.SettingSlotIntervalMinutes: "sixty",
		domain.SettingEnabledWeekdays:     "7,8,-1,x",
		domain.SettingBlockedDates:        "not-a-date,2026-13-40",
	})

	assert.Equal(t, domain.DefaultWorkStart, cfg.WorkStart)
	assert.Equal(t, domain.DefaultWorkEnd, cfg.WorkEnd)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, cfg.SlotIntervalMinutes)
	assert.Equal(t, domain.DefaultEnabledWeekdays, cfg.EnabledWeekdays)
	assert.Empty(t, cfg.BlockedDates)
}

func TestParseBookingConfig_InvertedWindowKept(t *testing.T) {
	// A syntactically valid but inverted window is kept as is, the grid
	// builder answers it with an empty grid
	cfg := parseBookingConfig(map[string]string{
		domain.SettingWorkStart: "18:00",
		domain.SettingWorkEnd:   "08:00",
	})

	assert.Equal(t, "18:00", cfg.WorkStart)
	assert.Equal(t, "08:00", cfg.WorkEnd)
	assert.Empty(t, domain.BuildTimeSlots(cfg))
}

func TestParseWeekdays_DeduplicatesAndSorts(t *testing.T) {
	assert.Equal(t, []int{0, 2, 6}, parseWeekdays("6, 2, 0, 2, 6"))
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, isTruthy("true"))
	assert.True(t, isTruthy("TRUE"))
	assert.True(t, isTruthy("1"))
	assert.True(t, isTruthy("yes"))
	assert.False(t, isTruthy("false"))
	assert.False(t, isTruthy("0"))
	assert.False(t, isTruthy(""))
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "show_testimonials", normalizeKey("showTestimonials"))
	assert.Equal(t, "booking_max_per_slot", normalizeKey("bookingMaxPerSlot"))
	assert.Equal(t, "site_name", normalizeKey("site_name"))
}
