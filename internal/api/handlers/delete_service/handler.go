package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
	"github.com/fisiovita/clinic-booking/internal/service/catalog"
)

const (
	msgInvalidServiceID = "identificador de serviço inválido"
	msgServiceNotFound  = "serviço não encontrado"
)

// DeleteResponse confirms the removal
type DeleteResponse struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
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

// Handle DELETE /api/admin/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/services/{id} - Invalid service ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /admin/services/{id} - Service not found: service_id=%d", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /admin/services/{id} - Failed to delete service %d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service deleted: service_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{ID: id, Deleted: true})
}
