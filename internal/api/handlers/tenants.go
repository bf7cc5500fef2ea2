package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quillhq/quill/internal/api/dto"
	"github.com/quillhq/quill/internal/api/middleware"
	"github.com/quillhq/quill/internal/database/models"
	"github.com/quillhq/quill/internal/tenants"
)

type TenantHandler struct {
	tenants *tenants.Service
}

func NewTenantHandler(tenantService *tenants.Service) *TenantHandler {
	return &TenantHandler{tenants: tenantService}
}

func tenantToDTO(tenant *models.Tenant) dto.TenantDTO {
	return dto.TenantDTO{
		ID:   tenant.ID.String(),
		Name: tenant.Name,
		Slug: tenant.Slug,
		Plan: tenant.Plan,
	}
}

// Upgrade handles POST /tenants/{slug}/upgrade. The admin role requirement is
// enforced by RequireRole on the route; here the slug must still resolve to
// the caller's own tenant.
func (h *TenantHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.GetTenantID(r.Context())
	slug := chi.URLParam(r, "slug")

	tenant, err := h.tenants.Upgrade(r.Context(), tenantID, slug)
	if err != nil {
		switch {
		case errors.Is(err, tenants.ErrTenantNotFound):
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Tenant not found"})
		case errors.Is(err, tenants.ErrTenantMismatch):
			writeJSON(w, http.StatusForbidden, dto.ErrorResponse{Error: "Cannot upgrade another tenant"})
		default:
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to upgrade tenant"})
		}
		return
	}

	writeJSON(w, http.StatusOK, tenantToDTO(tenant))
}
