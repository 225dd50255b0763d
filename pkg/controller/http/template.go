package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type fieldSchemaDTO struct {
	Key         string   `json:"key,omitempty"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	HelpText    string   `json:"helpText,omitempty"`
	Options     []string `json:"options,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Accept      string   `json:"accept,omitempty"`
}

func (dto fieldSchemaDTO) toModel() model.FieldSchema {
	return model.FieldSchema{
		Key:         dto.Key,
		Label:       dto.Label,
		Type:        types.FieldType(dto.Type),
		Required:    dto.Required,
		Placeholder: dto.Placeholder,
		HelpText:    dto.HelpText,
		Options:     dto.Options,
		Min:         dto.Min,
		Max:         dto.Max,
		Rows:        dto.Rows,
		Accept:      dto.Accept,
	}
}

func fieldSchemaFromModel(f model.FieldSchema) fieldSchemaDTO {
	return fieldSchemaDTO{
		Key:         f.Key,
		Label:       f.Label,
		Type:        f.Type.String(),
		Required:    f.Required,
		Placeholder: f.Placeholder,
		HelpText:    f.HelpText,
		Options:     f.Options,
		Min:         f.Min,
		Max:         f.Max,
		Rows:        f.Rows,
		Accept:      f.Accept,
	}
}

type templateRequest struct {
	Name   string           `json:"name"`
	Entity string           `json:"entity"`
	Fields []fieldSchemaDTO `json:"fields"`
}

type templateResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Entity    string           `json:"entity"`
	Fields    []fieldSchemaDTO `json:"fields"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func templateFromModel(tmpl *model.Template) templateResponse {
	fields := make([]fieldSchemaDTO, len(tmpl.Fields))
	for i, f := range tmpl.Fields {
		fields[i] = fieldSchemaFromModel(f)
	}
	return templateResponse{
		ID:        tmpl.ID.String(),
		Name:      tmpl.Name,
		Entity:    tmpl.Entity.String(),
		Fields:    fields,
		CreatedAt: tmpl.CreatedAt,
		UpdatedAt: tmpl.UpdatedAt,
	}
}

func (req templateRequest) toModel(tenantID types.TenantID) *model.Template {
	fields := make([]model.FieldSchema, len(req.Fields))
	for i, dto := range req.Fields {
		fields[i] = dto.toModel()
	}
	return &model.Template{
		TenantID: tenantID,
		Name:     req.Name,
		Entity:   types.EntityType(req.Entity),
		Fields:   fields,
	}
}

func (s *Server) createTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Template.Create(ctx, req.toModel(tenantFromContext(ctx)))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, templateFromModel(created))
}

func (s *Server) getTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tmpl, err := s.uc.Template.Get(ctx, tenantFromContext(ctx), types.TemplateID(chi.URLParam(r, "templateID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, templateFromModel(tmpl))
}

func (s *Server) updateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req templateRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	tmpl := req.toModel(tenantFromContext(ctx))
	tmpl.ID = types.TemplateID(chi.URLParam(r, "templateID"))

	updated, err := s.uc.Template.Update(ctx, tmpl)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, templateFromModel(updated))
}

func (s *Server) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Template.Delete(ctx, tenantFromContext(ctx), types.TemplateID(chi.URLParam(r, "templateID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	templates, err := s.uc.Template.List(ctx, tenantFromContext(ctx), types.EntityType(r.URL.Query().Get("entity")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]templateResponse, len(templates))
	for i, tmpl := range templates {
		resp[i] = templateFromModel(tmpl)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"templates": resp})
}
