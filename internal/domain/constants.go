package domain

// Default booking configuration values, applied when a setting is missing
// or unparseable
const (
	DefaultWorkStart           = "08:00"
	DefaultWorkEnd             = "18:00"
	DefaultSlotIntervalMinutes = 60
	DefaultMaxPerSlot          = 1
	DefaultHorizonDays         = 90
)

// Clamping bounds for numeric booking settings
const (
	MinSlotIntervalMinutes = 15
	MaxSlotIntervalMinutes = 180
	MinMaxPerSlot          = 1
	MaxMaxPerSlot          = 20
	MinHorizonDays         = 7
	MaxHorizonDays         = 180
)

// Field length limits for public submissions
const (
	MaxNameLength    = 100
	MaxEmailLength   = 120
	MaxPhoneLength   = 25
	MaxServiceLength = 120
	MaxSubjectLength = 150
	MaxNotesLength   = 1000
	MaxMessageLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultEnabledWeekdays is Monday through Friday (0=Sunday).
// Also the fallback when booking_enabled_weekdays filters down to nothing,
// so a configuration can never end up with zero bookable weekdays.
var DefaultEnabledWeekdays = []int{1, 2, 3, 4, 5}

// CapacityConsumingStatuses lists the statuses that occupy slot capacity.
// Used by repositories when counting reservations per slot.
var CapacityConsumingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// Settings keys read by the booking engine
const (
	SettingWorkStart           = "booking_work_start"
	SettingWorkEnd             = "booking_work_end"
	SettingSlotIntervalMinutes = "booking_slot_interval_minutes"
	SettingMaxPerSlot          = "booking_max_per_slot"
	SettingHorizonDays         = "booking_horizon_days"
	SettingEnabledWeekdays     = "booking_enabled_weekdays"
	SettingBlockedDates        = "booking_blocked_dates"

	SettingShowTestimonials   = "show_testimonials"
	SettingEmailNotifications = "email_notifications_enabled"
)
