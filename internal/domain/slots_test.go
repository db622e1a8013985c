package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fisiovita/clinic-booking/pkg/types"
)

func defaultConfig() *BookingConfig {
	return &BookingConfig{
		WorkStart:           "08:00",
		WorkEnd:             "18:00",
		SlotIntervalMinutes: 60,
		MaxPerSlot:          1,
		HorizonDays:         90,
		EnabledWeekdays:     []int{1, 2, 3, 4, 5},
		BlockedDates:        map[string]bool{},
	}
}

func TestBuildTimeSlots_FullDay(t *testing.T) {
	slots := BuildTimeSlots(defaultConfig())

	assert.Len(t, slots, 10)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]), "slots must ascend")
	}
}

func TestBuildTimeSlots_DropsPartialSlot(t *testing.T) {
	cfg := defaultConfig()
	cfg.WorkStart = "08:00"
	cfg.WorkEnd = "10:30"
	cfg.SlotIntervalMinutes = 60

	// 10:00 would run past 10:30, so only two slots fit
	slots := BuildTimeSlots(cfg)
	assert.Equal(t, []types.TimeString{"08:00", "09:00"}, slots)
}

func TestBuildTimeSlots_ShortInterval(t *testing.T) {
	cfg := defaultConfig()
	cfg.WorkStart = "09:00"
	cfg.WorkEnd = "11:00"
	cfg.SlotIntervalMinutes = 30

	slots := BuildTimeSlots(cfg)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestBuildTimeSlots_EmptyGrid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(cfg *BookingConfig)
	}{
		{name: "start equals end", mutate: func(cfg *BookingConfig) {
			cfg.WorkStart = "10:00"
			cfg.WorkEnd = "10:00"
		}},
		{name: "start after end", mutate: func(cfg *BookingConfig) {
			cfg.WorkStart = "18:00"
			cfg.WorkEnd = "08:00"
		}},
		{name: "malformed start", mutate: func(cfg *BookingConfig) {
			cfg.WorkStart = "25:00"
		}},
		{name: "malformed end", mutate: func(cfg *BookingConfig) {
			cfg.WorkEnd = "nope"
		}},
		{name: "zero interval", mutate: func(cfg *BookingConfig) {
			cfg.SlotIntervalMinutes = 0
		}},
		{name: "interval longer than window", mutate: func(cfg *BookingConfig) {
			cfg.WorkStart = "08:00"
			cfg.WorkEnd = "08:30"
			cfg.SlotIntervalMinutes = 60
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			assert.Empty(t, BuildTimeSlots(cfg))
		})
	}
}

func TestBuildTimeSlots_Deterministic(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, BuildTimeSlots(cfg), BuildTimeSlots(cfg))
}

func TestGridContains(t *testing.T) {
	grid := BuildTimeSlots(defaultConfig())

	assert.True(t, GridContains(grid, "08:00"))
	assert.True(t, GridContains(grid, "17:00"))
	assert.False(t, GridContains(grid, "18:00"))
	assert.False(t, GridContains(grid, "08:30"))
}

func TestToday(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 3, 15, 22, 45, 12, 0, loc)

	today := Today(now)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), today)
}

func TestBookingConfig_IsDateAllowed(t *testing.T) {
	cfg := defaultConfig()
	cfg.BlockedDates = map[string]bool{"2026-03-17": true}

	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	blockedTuesday := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, cfg.IsDateAllowed(monday))
	assert.False(t, cfg.IsDateAllowed(blockedTuesday))
	assert.False(t, cfg.IsDateAllowed(sunday))
}

func TestBookingStatus_Transitions(t *testing.T) {
	pending := &BookingRequest{Status: StatusPending}
	assert.True(t, pending.CanTransitionTo(StatusConfirmed))
	assert.True(t, pending.CanTransitionTo(StatusCancelled))
	assert.False(t, pending.CanTransitionTo(StatusPending))
	assert.False(t, pending.CanTransitionTo("unknown"))

	completed := &BookingRequest{Status: StatusCompleted}
	assert.False(t, completed.CanTransitionTo(StatusPending))
	assert.False(t, completed.CanTransitionTo(StatusCancelled))
}

func TestBookingRequest_CountsTowardCapacity(t *testing.T) {
	slot := types.TimeString("09:00")

	testCases := []struct {
		name     string
		booking  BookingRequest
		expected bool
	}{
		{name: "pending with time", booking: BookingRequest{Status: StatusPending, PreferredTime: &slot}, expected: true},
		{name: "confirmed with time", booking: BookingRequest{Status: StatusConfirmed, PreferredTime: &slot}, expected: true},
		{name: "cancelled with time", booking: BookingRequest{Status: StatusCancelled, PreferredTime: &slot}, expected: false},
		{name: "completed with time", booking: BookingRequest{Status: StatusCompleted, PreferredTime: &slot}, expected: false},
		{name: "pending without time", booking: BookingRequest{Status: StatusPending}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.booking.CountsTowardCapacity())
		})
	}
}
