package get_availability

import (
	getAvailability "github.com/fisiovita/clinic-booking/internal/usecase/get_availability"
)

// ConfigResponse echoes the booking configuration to the widget. The
// calendar rules are included so closed weekdays and blocked dates can be
// greyed out client side.
type ConfigResponse struct {
	WorkStart           string   `json:"workStart"`
	WorkEnd             string   `json:"workEnd"`
	SlotIntervalMinutes int      `json:"slotIntervalMinutes"`
	MaxPerSlot          int      `json:"maxPerSlot"`
	HorizonDays         int      `json:"horizonDays"`
	EnabledWeekdays     []int    `json:"enabledWeekdays"`
	BlockedDates        []string `json:"blockedDates"`
}

// DateResponse is one day of the booking window
type DateResponse struct {
	Date           string `json:"date"`
	Available      bool   `json:"available"`
	TotalSlots     int    `json:"totalSlots"`
	AvailableSlots int    `json:"availableSlots"`
}

// SlotResponse is one grid slot on the selected date
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
}

// AvailabilityResponse is the HTTP body of the availability snapshot
type AvailabilityResponse struct {
	Services     []string       `json:"services"`
	Config       ConfigResponse `json:"config"`
	Dates        []DateResponse `json:"dates"`
	SelectedDate string         `json:"selectedDate"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(result *getAvailability.Response) *AvailabilityResponse {
	dates := make([]DateResponse, 0, len(result.Dates))
	for _, d := range result.Dates {
		dates = append(dates, DateResponse{
			Date:           d.Date,
			Available:      d.Available,
			TotalSlots:     d.TotalSlots,
			AvailableSlots: d.AvailableSlots,
		})
	}

	slots := make([]SlotResponse, 0, len(result.Slots))
	for _, s := range result.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
			Booked:    s.Booked,
			Remaining: s.Remaining,
		})
	}

	return &AvailabilityResponse{
		Services: result.Services,
		Config: ConfigResponse{
			WorkStart:           result.Config.WorkStart,
			WorkEnd:             result.Config.WorkEnd,
			SlotIntervalMinutes: result.Config.SlotIntervalMinutes,
			MaxPerSlot:          result.Config.MaxPerSlot,
			HorizonDays:         result.Config.HorizonDays,
			EnabledWeekdays:     result.Config.EnabledWeekdays,
			BlockedDates:        result.Config.BlockedDates,
		},
		Dates:        dates,
		SelectedDate: result.SelectedDate,
		Slots:        slots,
	}
}
