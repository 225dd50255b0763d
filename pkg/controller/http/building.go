package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type buildingRequest struct {
	Name       string         `json:"name"`
	Address    string         `json:"address,omitempty"`
	City       string         `json:"city,omitempty"`
	Postcode   string         `json:"postcode,omitempty"`
	Archived   bool           `json:"archived,omitempty"`
	TemplateID string         `json:"templateId,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

type buildingResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Address    string         `json:"address,omitempty"`
	City       string         `json:"city,omitempty"`
	Postcode   string         `json:"postcode,omitempty"`
	ImageRef   string         `json:"imageRef,omitempty"`
	Archived   bool           `json:"archived,omitempty"`
	TemplateID string         `json:"templateId,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (req buildingRequest) toModel(tenantID types.TenantID) *model.Building {
	return &model.Building{
		TenantID:   tenantID,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Postcode:   req.Postcode,
		Archived:   req.Archived,
		TemplateID: types.TemplateID(req.TemplateID),
		Data:       req.Data,
	}
}

func buildingFromModel(b *model.Building) buildingResponse {
	return buildingResponse{
		ID:         b.ID.String(),
		Name:       b.Name,
		Address:    b.Address,
		City:       b.City,
		Postcode:   b.Postcode,
		ImageRef:   b.ImageRef,
		Archived:   b.Archived,
		TemplateID: b.TemplateID.String(),
		Data:       b.Data,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (s *Server) createBuilding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req buildingRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Building.Create(ctx, req.toModel(tenantFromContext(ctx)))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, buildingFromModel(created))
}

func (s *Server) getBuilding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	building, err := s.uc.Building.Get(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, buildingFromModel(building))
}

func (s *Server) updateBuilding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req buildingRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	building := req.toModel(tenantFromContext(ctx))
	building.ID = types.BuildingID(chi.URLParam(r, "buildingID"))

	updated, err := s.uc.Building.Update(ctx, building)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, buildingFromModel(updated))
}

func (s *Server) deleteBuilding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Building.Delete(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listBuildings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buildings, err := s.uc.Building.List(ctx, tenantFromContext(ctx))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]buildingResponse, len(buildings))
	for i, b := range buildings {
		resp[i] = buildingFromModel(b)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"buildings": resp})
}

// uploadBuildingImage accepts a multipart form with an "image" part and
// records the stored object as the building's photo.
func (s *Server) uploadBuildingImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, header, err := r.FormFile("image")
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "missing image part"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	updated, err := s.uc.Building.UploadImage(ctx,
		tenantFromContext(ctx),
		types.BuildingID(chi.URLParam(r, "buildingID")),
		file,
		header.Header.Get("Content-Type"),
		header.Filename,
	)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, buildingFromModel(updated))
}

func (s *Server) newBuildingForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	controls, err := s.uc.Building.NewForm(ctx, tenantFromContext(ctx), types.TemplateID(r.URL.Query().Get("template")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"controls": controls})
}

func (s *Server) editBuildingForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	controls, err := s.uc.Building.EditForm(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"controls": controls})
}

func (s *Server) viewBuilding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := s.uc.Building.View(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"fields": fields})
}

func (s *Server) listBuildingTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := s.uc.Task.ListByBuilding(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = taskFromModel(t)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"tasks": resp})
}

func (s *Server) listBuildingDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documents, err := s.uc.Document.ListByBuilding(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]documentResponse, len(documents))
	for i, doc := range documents {
		resp[i] = documentFromModel(doc)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"documents": resp})
}

func (s *Server) listBuildingInspections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inspections, err := s.uc.Inspection.ListByBuilding(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
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

func (s *Server) listBuildingNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := s.uc.Note.ListByBuilding(ctx, tenantFromContext(ctx), types.BuildingID(chi.URLParam(r, "buildingID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]noteResponse, len(notes))
	for i, n := range notes {
		resp[i] = noteFromModel(n)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"notes": resp})
}
