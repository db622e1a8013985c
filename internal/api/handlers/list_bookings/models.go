package list_bookings

import (
	"time"

	"github.com/fisiovita/clinic-booking/internal/domain"
)

// BookingResponse is one booking in the admin listing
type BookingResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	Phone         string  `json:"phone"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime *string `json:"preferredTime,omitempty"`
	ServiceType   string  `json:"serviceType"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// FromDomain converts bookings into the HTTP response
func FromDomain(bookings []*domain.BookingRequest) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp := BookingResponse{
			ID:            b.ID,
			Name:          b.Name,
			Email:         b.Email,
			Phone:         b.Phone,
			PreferredDate: b.PreferredDate.Format(domain.DateFormat),
			ServiceType:   b.ServiceType,
			Notes:         b.Notes,
			Status:        string(b.Status),
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		}
		if b.PreferredTime != nil {
			t := b.PreferredTime.String()
			resp.PreferredTime = &t
		}
		out = append(out, resp)
	}
	return out
}
