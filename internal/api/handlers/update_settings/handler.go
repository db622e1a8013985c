package update_settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNoValidKeys        = "nenhuma configuração válida para atualizar"
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

// Handle PUT /api/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	applied, err := h.service.Update(r.Context(), updates)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrNoValidKeys):
			h.logger.Warn("PUT /admin/settings - No valid keys in update")
			handlers.RespondBadRequest(w, msgNoValidKeys)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings - Updated %d settings", len(applied))
	handlers.RespondJSON(w, http.StatusOK, applied)
}
