package get_availability

import (
	"errors"
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	getAvailability "github.com/fisiovita/clinic-booking/internal/usecase/get_availability"
)

const msgInvalidDate = "formato de data inválido, use YYYY-MM-DD"

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/booking/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getAvailability.Request{
		SelectedDate: r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /booking/availability - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking/availability - Failed to build availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
