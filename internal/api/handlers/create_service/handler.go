package create_service

import (
	"errors"
	"net/http"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingTitle       = "título do serviço é obrigatório"
)

// ServiceRequest is the admin service creation body
type ServiceRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	OrderIndex  int     `json:"orderIndex"`
	IsActive    bool    `json:"isActive"`
}

// ServiceResponse is the created catalog entry
type ServiceResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"orderIndex"`
	IsActive   bool   `json:"isActive"`
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

// Handle POST /api/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.catalog.Create(r.Context(), catalog.ServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingTitle):
			h.logger.Warn("POST /admin/services - Missing title")
			handlers.RespondBadRequest(w, msgMissingTitle)

		default:
			h.logger.Error("POST /admin/services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d, title=%q", created.ID, created.Title)
	handlers.RespondJSON(w, http.StatusCreated, ServiceResponse{
		ID:         created.ID,
		Title:      created.Title,
		OrderIndex: created.OrderIndex,
		IsActive:   created.IsActive,
	})
}
