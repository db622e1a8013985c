package mark_message_read

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

// MarkReadResponse confirms the change
type MarkReadResponse struct {
	ID     int64 `json:"id"`
	IsRead bool  `json:"isRead"`
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

// Handle PATCH /api/admin/messages/{id}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/messages/{id}/read - Invalid message ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidMessageID)
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, messages.ErrMessageNotFound):
			h.logger.Warn("PATCH /admin/messages/{id}/read - Message not found: message_id=%d", id)
			handlers.RespondNotFound(w, msgMessageNotFound)

		default:
			h.logger.Error("PATCH /admin/messages/{id}/read - Failed to mark message %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/messages/{id}/read - Message marked as read: message_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, MarkReadResponse{ID: id, IsRead: true})
}
