package list_messages

import (
	"net/http"
	"time"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/domain"
)

// MessageResponse is one contact message in the admin inbox
type MessageResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Subject   string  `json:"subject,omitempty"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"isRead"`
	CreatedAt string  `json:"createdAt"`
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

// Handle GET /api/admin/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyUnread := r.URL.Query().Get("unread") == "true"

	items, err := h.service.List(r.Context(), onlyUnread)
	if err != nil {
		h.logger.Error("GET /admin/messages - Failed to list messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(items))
}

func fromDomain(items []*domain.ContactMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MessageResponse{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Subject:   m.Subject,
			Message:   m.Message,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
