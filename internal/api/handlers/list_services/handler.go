package list_services

import (
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/domain"
)

// ServiceResponse is one catalog entry
type ServiceResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	OrderIndex  int     `json:"orderIndex"`
}

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(services))
}

func fromDomain(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
			OrderIndex:  s.OrderIndex,
		})
	}
	return out
}
