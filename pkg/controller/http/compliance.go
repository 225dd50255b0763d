package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

func (s *Server) buildingCompliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.uc.Compliance.ForBuilding(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, summary)
}

func (s *Server) tenantCompliance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := s.uc.Compliance.ForTenant(ctx, tenantFromContext(ctx))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, summary)
}
