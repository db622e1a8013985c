package delete_testimonial

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

// DeleteResponse confirms the removal
type DeleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
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

// Handle DELETE /api/admin/testimonials/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/testimonials/{id} - Invalid testimonial ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidTestimonialID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, testimonials.ErrTestimonialNotFound):
			h.logger.Warn("DELETE /admin/testimonials/{id} - Testimonial not found: testimonial_id=%d", id)
			handlers.RespondNotFound(w, msgTestimonialNotFound)

		default:
			h.logger.Error("DELETE /admin/testimonials/{id} - Failed to delete testimonial %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/testimonials/{id} - Testimonial deleted: testimonial_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{ID: id, Deleted: true})
}
