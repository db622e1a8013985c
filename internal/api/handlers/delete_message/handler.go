package delete_message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/messages"
)

const (
	msgInvalidMessageID = "identificador de mensagem inválido"
	msgMessageNotFound  = "mensagem não encontrada"
)

// DeleteResponse confirms the removal
type DeleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

type Handler struct {
	service MessagesService
	logger  Logger
}

func NewHandler(service MessagesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/admin/messages/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/messages/{id} - Invalid message ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, messages.ErrMessageNotFound):
			h.logger.Warn("DELETE /admin/messages/{id} - Message not found: message_id=%d", id)
			handlers.RespondNotFound(w, msgMessageNotFound)

		default:
			h.logger.Error("DELETE /admin/messages/{id} - Failed to delete message %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/messages/{id} - Message deleted: message_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{ID: id, Deleted: true})
}
