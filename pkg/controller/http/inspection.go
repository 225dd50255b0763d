package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type inspectionRequest struct {
	BuildingID   string         `json:"buildingId,omitempty"`
	Title        string         `json:"title"`
	Status       string         `json:"status"`
	ScheduledFor string         `json:"scheduledFor"`
	CompletedAt  time.Time      `json:"completedAt,omitempty"`
	Outcome      string         `json:"outcome,omitempty"`
	TemplateID   string         `json:"templateId,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
}

type inspectionResponse struct {
	ID           string         `json:"id"`
	BuildingID   string         `json:"buildingId,omitempty"`
	Title        string         `json:"title"`
	Status       string         `json:"status"`
	ScheduledFor string         `json:"scheduledFor"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
	Outcome      string         `json:"outcome,omitempty"`
	TemplateID   string         `json:"templateId,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (req inspectionRequest) toModel(tenantID types.TenantID) *model.Inspection {
	return &model.Inspection{
		TenantID:     tenantID,
		BuildingID:   types.BuildingID(req.BuildingID),
		Title:        req.Title,
		Status:       types.InspectionStatus(req.Status),
		ScheduledFor: req.ScheduledFor,
		CompletedAt:  req.CompletedAt,
		Outcome:      req.Outcome,
		TemplateID:   types.TemplateID(req.TemplateID),
		Data:         req.Data,
	}
}

func inspectionFromModel(i *model.Inspection) inspectionResponse {
	resp := inspectionResponse{
		ID:           i.ID.String(),
		BuildingID:   i.BuildingID.String(),
		Title:        i.Title,
		Status:       i.Status.String(),
		ScheduledFor: i.ScheduledFor,
		Outcome:      i.Outcome,
		TemplateID:   i.TemplateID.String(),
		Data:         i.Data,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if !i.CompletedAt.IsZero() {
		completedAt := i.CompletedAt
		resp.CompletedAt = &completedAt
	}
	return resp
}

func (s *Server) createInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inspectionRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Inspection.Create(ctx, req.toModel(tenantFromContext(ctx)))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, inspectionFromModel(created))
}

func (s *Server) getInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inspection, err := s.uc.Inspection.Get(ctx, tenantFromContext(ctx), types.InspectionID(chi.URLParam(r, "inspectionID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, inspectionFromModel(inspection))
}

func (s *Server) updateInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inspectionRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	inspection := req.toModel(tenantFromContext(ctx))
	inspection.ID = types.InspectionID(chi.URLParam(r, "inspectionID"))

	updated, err := s.uc.Inspection.Update(ctx, inspection)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, inspectionFromModel(updated))
}

func (s *Server) deleteInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Inspection.Delete(ctx, tenantFromContext(ctx), types.InspectionID(chi.URLParam(r, "inspectionID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listInspections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inspections, err := s.uc.Inspection.List(ctx, tenantFromContext(ctx))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]inspectionResponse, len(inspections))
	for i, insp := range inspections {
		resp[i] = inspectionFromModel(insp)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"inspections": resp})
}

func (s *Server) newInspectionForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	controls, err := s.uc.Inspection.NewForm(ctx, tenantFromContext(ctx), types.TemplateID(r.URL.Query().Get("template")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"controls": controls})
}

func (s *Server) editInspectionForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	controls, err := s.uc.Inspection.EditForm(ctx, tenantFromContext(ctx), types.InspectionID(chi.URLParam(r, "inspectionID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"controls": controls})
}

func (s *Server) viewInspection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := s.uc.Inspection.View(ctx, tenantFromContext(ctx), types.InspectionID(chi.URLParam(r, "inspectionID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"fields": fields})
}
