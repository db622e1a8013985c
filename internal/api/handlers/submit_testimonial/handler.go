package submit_testimonial

import (
	"errors"
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/testimonials"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingFields      = "nome e depoimento são obrigatórios"
	msgInvalidRating      = "a avaliação deve estar entre 1 e 5"
	msgReceived           = "depoimento enviado para aprovação"
)

// SubmitTestimonialRequest is the testimonial form body
type SubmitTestimonialRequest struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// SubmitTestimonialResponse confirms the stored testimonial
type SubmitTestimonialResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
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

// Handle POST /api/testimonials
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitTestimonialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /testimonials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Submit(r.Context(), testimonials.SubmitInput{
		Name:   req.Name,
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		switch {
		case errors.Is(err, testimonials.ErrMissingFields):
			h.logger.Warn("POST /testimonials - Missing fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, testimonials.ErrInvalidRating):
			h.logger.Warn("POST /testimonials - Invalid rating: %d", req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		default:
			h.logger.Error("POST /testimonials - Failed to store testimonial: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /testimonials - Testimonial stored: testimonial_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, SubmitTestimonialResponse{
		ID:      created.ID,
		Message: msgReceived,
	})
}
