package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type documentRequest struct {
	BuildingID string         `json:"buildingId,omitempty"`
	Title      string         `json:"title"`
	Category   string         `json:"category,omitempty"`
	ExpiresAt  string         `json:"expiresAt,omitempty"`
	TemplateID string         `json:"templateId,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

type documentResponse struct {
	ID          string         `json:"id"`
	BuildingID  string         `json:"buildingId,omitempty"`
	Title       string         `json:"title"`
	Category    string         `json:"category,omitempty"`
	FileRef     string         `json:"fileRef,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	Size        int64          `json:"size,omitempty"`
	ExpiresAt   string         `json:"expiresAt,omitempty"`
	TemplateID  string         `json:"templateId,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (req documentRequest) toModel(tenantID types.TenantID) *model.Document {
	return &model.Document{
		TenantID:   tenantID,
		BuildingID: types.BuildingID(req.BuildingID),
		Title:      req.Title,
		Category:   req.Category,
		ExpiresAt:  req.ExpiresAt,
		TemplateID: types.TemplateID(req.TemplateID),
		Data:       req.Data,
	}
}

func documentFromModel(doc *model.Document) documentResponse {
	return documentResponse{
		ID:          doc.ID.String(),
		BuildingID:  doc.BuildingID.String(),
		Title:       doc.Title,
		Category:    doc.Category,
		FileRef:     doc.FileRef,
		ContentType: doc.ContentType,
		Size:        doc.Size,
		ExpiresAt:   doc.ExpiresAt,
		TemplateID:  doc.TemplateID.String(),
		Data:        doc.Data,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

// uploadDocument accepts a multipart form: a "file" part carrying the
// document contents, and a "document" part carrying the JSON metadata.
func (s *Server) uploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	meta := r.FormValue("document")
	var req documentRequest
	if err := json.Unmarshal([]byte(meta), &req); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to decode document metadata"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "missing file part"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	doc := req.toModel(tenantFromContext(ctx))
	doc.ContentType = header.Header.Get("Content-Type")
	doc.Size = header.Size

	created, err := s.uc.Document.Upload(ctx, doc, file, header.Filename)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, documentFromModel(created))
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, err := s.uc.Document.Get(ctx, tenantFromContext(ctx), types.DocumentID(chi.URLParam(r, "documentID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, documentFromModel(doc))
}

func (s *Server) updateDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req documentRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	doc := req.toModel(tenantFromContext(ctx))
	doc.ID = types.DocumentID(chi.URLParam(r, "documentID"))

	updated, err := s.uc.Document.Update(ctx, doc)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, documentFromModel(updated))
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Document.Delete(ctx, tenantFromContext(ctx), types.DocumentID(chi.URLParam(r, "documentID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	documents, err := s.uc.Document.List(ctx, tenantFromContext(ctx))
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

func (s *Server) documentURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	url, err := s.uc.Document.FileURL(ctx, tenantFromContext(ctx), types.DocumentID(chi.URLParam(r, "documentID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"url": url})
}

func (s *Server) viewDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := s.uc.Document.View(ctx, tenantFromContext(ctx), types.DocumentID(chi.URLParam(r, "documentID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"fields": fields})
}
