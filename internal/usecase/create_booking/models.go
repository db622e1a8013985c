package create_booking

import (
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/pkg/types"
)

// Request carries a public booking submission
type Request struct {
	Name          string
	Email         *string
	Phone         string
	PreferredDate string // ISO date
	PreferredTime string // HH:MM
	ServiceType   string
	Notes         *string
	IPAddress     *string
}

// Response is the admitted booking
type Response struct {
	ID            int64
	Name          string
	PreferredDate string
	PreferredTime string
	ServiceType   string
	Status        domain.BookingStatus
	CreatedAt     time.Time
}

// admission is the validated and sanitized form of a request
type admission struct {
	name    string
	email   *string
	phone   string
	date    time.Time
	slot    types.TimeString
	service string
	notes   *string
}
