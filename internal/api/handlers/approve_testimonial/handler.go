package approve_testimonial

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/testimonials"
)

const (
	msgInvalidTestimonialID = "identificador de depoimento inválido"
	msgTestimonialNotFound  = "depoimento não encontrado"
)

// ApproveResponse confirms the publication
type ApproveResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"isActive"`
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

// Handle PATCH /api/admin/testimonials/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/testimonials/{id}/approve - Invalid testimonial ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidTestimonialID)
		return
	}

	if err := h.service.Approve(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, testimonials.ErrTestimonialNotFound):
			h.logger.Warn("PATCH /admin/testimonials/{id}/approve - Testimonial not found: testimonial_id=%d", id)
			handlers.RespondNotFound(w, msgTestimonialNotFound)

		default:
			h.logger.Error("PATCH /admin/testimonials/{id}/approve - Failed to approve testimonial %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/testimonials/{id}/approve - Testimonial published: testimonial_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, ApproveResponse{ID: id, IsActive: true})
}
