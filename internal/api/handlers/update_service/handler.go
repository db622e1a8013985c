package update_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidServiceID   = "identificador de serviço inválido"
	msgMissingTitle       = "título do serviço é obrigatório"
	msgServiceNotFound    = "serviço não encontrado"
)

// ServiceRequest is the admin service update body
type ServiceRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	OrderIndex  int     `json:"orderIndex"`
	IsActive    bool    `json:"isActive"`
}

// ServiceResponse is the catalog entry after the change
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

// Handle PUT /api/admin/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid service ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.catalog.Update(r.Context(), id, catalog.ServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingTitle):
			h.logger.Warn("PUT /admin/services/{id} - Missing title: service_id=%d", id)
			handlers.RespondBadRequest(w, msgMissingTitle)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/{id} - Service not found: service_id=%d", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("PUT /admin/services/{id} - Failed to update service %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated: service_id=%d, title=%q", id, updated.Title)
	handlers.RespondJSON(w, http.StatusOK, ServiceResponse{
		ID:         updated.ID,
		Title:      updated.Title,
		OrderIndex: updated.OrderIndex,
		IsActive:   updated.IsActive,
	})
}
