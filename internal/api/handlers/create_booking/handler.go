package create_booking

import (
	"errors"
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	createBooking "github.com/fisiovita/clinic-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingFields      = "nome, telefone, data, horário e serviço são obrigatórios"
	msgInvalidInput       = "dados inválidos, verifique data, horário e email"
	msgUnknownService     = "serviço não encontrado"
	msgTimeOutsideWindow  = "horário fora do expediente"
	msgDateOutsideWindow  = "data fora do período de agendamento"
	msgDateNotBookable    = "não há atendimento nesta data"
	msgSlotFull           = "este horário já está totalmente reservado"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/booking/request
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/request - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(handlers.ClientIP(r)))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /booking/request - Slot full: date=%s, time=%s", req.PreferredDate, req.PreferredTime)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /booking/request - Missing fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking/request - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("POST /booking/request - Unknown service: %s", req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrTimeOutsideWindow):
			h.logger.Warn("POST /booking/request - Time outside window: %s", req.PreferredTime)
			handlers.RespondBadRequest(w, msgTimeOutsideWindow)

		case errors.Is(err, createBooking.ErrDateOutsideWindow):
			h.logger.Warn("POST /booking/request - Date outside window: %s", req.PreferredDate)
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, createBooking.ErrDateNotBookable):
			h.logger.Warn("POST /booking/request - Date not bookable: %s", req.PreferredDate)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		default:
			h.logger.Error("POST /booking/request - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/request - Booking created: booking_id=%d, date=%s, time=%s",
		result.ID, result.PreferredDate, result.PreferredTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
