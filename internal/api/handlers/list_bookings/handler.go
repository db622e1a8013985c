package list_bookings

import (
	"net/http"
	"time"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/domain"
)

const (
	msgInvalidDate   = "formato de data inválido, use YYYY-MM-DD"
	msgInvalidStatus = "status inválido"
)

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

// Handle GET /api/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(bookings))
}

func (h *Handler) parseFilter(w http.ResponseWriter, r *http.Request) (domain.BookingsFilter, bool) {
	var filter domain.BookingsFilter
	query := r.URL.Query()

	if raw := query.Get("start_date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid start_date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return filter, false
		}
		filter.StartDate = &date
	}

	if raw := query.Get("end_date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid end_date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return filter, false
		}
		filter.EndDate = &date
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.BookingStatus(raw)
		if !status.IsValid() {
			h.logger.Warn("GET /admin/bookings - Invalid status: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return filter, false
		}
		filter.Status = &status
	}

	return filter, true
}
