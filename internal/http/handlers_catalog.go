package httpx

import (
	"context"
	"net/http"

	"github.com/xgencloud/xgen-site/internal/domain/model"
)

// CatalogService is the subset of the catalog service the handlers depend on.
type CatalogService interface {
	Partners(ctx context.Context) ([]model.Partner, error)
	Services(ctx context.Context) ([]model.ServiceOffering, error)
}

// CatalogHandlers serves the partner and service catalogs.
type CatalogHandlers struct {
	Svc CatalogService
}

// Partners handles GET /api/partners.
func (h *CatalogHandlers) Partners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Svc.Partners(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"partners": partners})
}

// Services handles GET /api/services.
func (h *CatalogHandlers) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.Svc.Services(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"services": services})
}
