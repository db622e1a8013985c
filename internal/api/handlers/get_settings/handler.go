package get_settings

import (
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.All(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed to read settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}
