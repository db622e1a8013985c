package domain

import "github.com/fisiovita/clinic-booking/pkg/types"

// DateAvailability summarizes one day of the booking window
type DateAvailability struct {
	Date           string // ISO date
	Available      bool
	TotalSlots     int
	AvailableSlots int
}

// SlotAvailability describes one grid slot on a specific date
type SlotAvailability struct {
	Time      types.TimeString
	Available bool
	Booked    int
	Remaining int
}

// IsFull reports whether the slot has no remaining capacity
func (s *SlotAvailability) IsFull() bool {
	return s.Remaining <= 0
}

// SlotUsage is one row of the booked-count aggregation: how many
// capacity-consuming bookings target a given (date, time) pair
type SlotUsage struct {
	Date   string // ISO date
	Time   types.TimeString
	Booked int
}

// SlotKey identifies a (date, time) pair in the usage map
type SlotKey struct {
	Date string
	Time types.TimeString
}

// UsageMap converts aggregation rows into a lookup map
func UsageMap(usage []SlotUsage) map[SlotKey]int {
	m := make(map[SlotKey]int, len(usage))
	for _, u := range usage {
		m[SlotKey{Date: u.Date, Time: u.Time}] = u.Booked
	}
	return m
}
