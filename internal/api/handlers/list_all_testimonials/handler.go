package list_all_testimonials

import (
	"net/http"
	"time"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/domain"
)

// TestimonialResponse is one testimonial in the moderation queue
type TestimonialResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

type Handler struct {
	service TestimonialsService
	logger  Logger
}

func NewHandler(service TestimonialsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/admin/testimonials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/testimonials - Failed to list testimonials: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(items))
}

func fromDomain(items []*domain.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(items))
	for _, t := range items {
		out = append(out, TestimonialResponse{
			ID:        t.ID,
			Name:      t.Name,
			Text:      t.Text,
			Rating:    t.Rating,
			IsActive:  t.IsActive,
			CreatedAt: t.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
