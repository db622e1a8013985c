package notifier

// AppointmentEvent is the payload posted to the notification webhook when a
// booking request is admitted
type AppointmentEvent struct {
	BookingID     int64   `json:"bookingId"`
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	Phone         string  `json:"phone"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	ServiceType   string  `json:"serviceType"`
	Notes         *string `json:"notes,omitempty"`
}
