package submit_contact

import (
	"errors"
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/messages"
	"github.com/fisiovita/clinic-booking/pkg/ptr"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingFields      = "nome, email e mensagem são obrigatórios"
	msgInvalidEmail       = "endereço de email inválido"
	msgReceived           = "mensagem recebida com sucesso"
)

// SubmitContactRequest is the contact form body
type SubmitContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// SubmitContactResponse confirms the stored message
type SubmitContactResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
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

// Handle POST /api/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Submit(r.Context(), messages.SubmitInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		IPAddress: ptr.Ptr(handlers.ClientIP(r)),
	})
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrMissingFields):
			h.logger.Warn("POST /contact - Missing fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, messages.ErrInvalidEmail):
			h.logger.Warn("POST /contact - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		default:
			h.logger.Error("POST /contact - Failed to store message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message stored: message_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, SubmitContactResponse{
		ID:      created.ID,
		Message: msgReceived,
	})
}
