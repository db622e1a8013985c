package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/domain"
	"github.com/fisiovita/clinic-booking/internal/service/bookings"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgInvalidBookingID    = "identificador de agendamento inválido"
	msgInvalidStatus       = "status inválido"
	msgBookingNotFound     = "agendamento não encontrado"
	msgForbiddenTransition = "transição de status não permitida"
)

// UpdateStatusRequest is the status change body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse is the booking after the change
type UpdateStatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/admin/bookings/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrForbiddenTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Forbidden transition: booking_id=%d, status=%q", id, req.Status)
			handlers.RespondConflict(w, msgForbiddenTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update booking %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Booking updated: booking_id=%d, status=%s", booking.ID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{
		ID:     booking.ID,
		Status: string(booking.Status),
	})
}
