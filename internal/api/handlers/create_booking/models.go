package create_booking

import (
	"time"

	createBooking "github.com/fisiovita/clinic-booking/internal/usecase/create_booking"
)

// CreateBookingRequest is the public booking submission body
type CreateBookingRequest struct {
	Name          string  `json:"name"`
	Email         *string `json:"email,omitempty"`
	Phone         string  `json:"phone"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	ServiceType   string  `json:"serviceType"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP body into the use case request
func (r *CreateBookingRequest) ToUseCaseRequest(clientIP string) *createBooking.Request {
	req := &createBooking.Request{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		ServiceType:   r.ServiceType,
		Notes:         r.Notes,
	}
	if clientIP != "" {
		req.IPAddress = &clientIP
	}
	return req
}

// CreateBookingResponse is the HTTP body of an admitted booking
type CreateBookingResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	ServiceType   string `json:"serviceType"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(result *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            result.ID,
		Name:          result.Name,
		PreferredDate: result.PreferredDate,
		PreferredTime: result.PreferredTime,
		ServiceType:   result.ServiceType,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt.Format(time.RFC3339),
	}
}
