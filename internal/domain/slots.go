package domain

import (
	"time"

	"github.com/fisiovita/clinic-booking/pkg/types"
)

// BuildTimeSlots generates the ordered slot grid for a booking configuration:
// every start time from WorkStart stepping by SlotIntervalMinutes whose full
// interval still fits before WorkEnd. A dangling partial slot at the end is
// dropped, not truncated.
//
// Returns an empty grid when either work time is malformed, WorkStart is not
// strictly before WorkEnd, or the interval is not positive. Pure function:
// the same config always yields the same ascending sequence.
func BuildTimeSlots(cfg *BookingConfig) []types.TimeString {
	if cfg.SlotIntervalMinutes <= 0 {
		return []types.TimeString{}
	}

	workStart, err := types.NewTimeStringFromString(cfg.WorkStart)
	if err != nil {
		return []types.TimeString{}
	}
	workEnd, err := types.NewTimeStringFromString(cfg.WorkEnd)
	if err != nil {
		return []types.TimeString{}
	}
	if !workStart.IsBefore(workEnd) {
		return []types.TimeString{}
	}

	startMin, _ := workStart.Minutes()
	endMin, _ := workEnd.Minutes()

	slots := make([]types.TimeString, 0, (endMin-startMin)/cfg.SlotIntervalMinutes)
	for cur := startMin; cur+cfg.SlotIntervalMinutes <= endMin; cur += cfg.SlotIntervalMinutes {
		slot, err := workStart.AddMinutes(cur - startMin)
		if err != nil {
			return []types.TimeString{}
		}
		slots = append(slots, slot)
	}

	return slots
}

// GridContains reports whether t is a member of the slot grid.
func GridContains(grid []types.TimeString, t types.TimeString) bool {
	for _, slot := range grid {
		if slot == t {
			return true
		}
	}
	return false
}

// Today returns now truncated to local midnight. All calendar window
// arithmetic in the booking engine starts from this value.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
