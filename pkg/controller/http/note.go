package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type noteRequest struct {
	BuildingID string `json:"buildingId"`
	Body       string `json:"body"`
	Author     string `json:"author,omitempty"`
	Pinned     bool   `json:"pinned,omitempty"`
}

type noteResponse struct {
	ID         string    `json:"id"`
	BuildingID string    `json:"buildingId"`
	Body       string    `json:"body"`
	Author     string    `json:"author,omitempty"`
	Pinned     bool      `json:"pinned,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (req noteRequest) toModel(tenantID types.TenantID) *model.Note {
	return &model.Note{
		TenantID:   tenantID,
		BuildingID: types.BuildingID(req.BuildingID),
		Body:       req.Body,
		Author:     req.Author,
		Pinned:     req.Pinned,
	}
}

func noteFromModel(n *model.Note) noteResponse {
	return noteResponse{
		ID:         n.ID.String(),
		BuildingID: n.BuildingID.String(),
		Body:       n.Body,
		Author:     n.Author,
		Pinned:     n.Pinned,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func (s *Server) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Note.Create(ctx, req.toModel(tenantFromContext(ctx)))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, noteFromModel(created))
}

func (s *Server) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	note := req.toModel(tenantFromContext(ctx))
	note.ID = types.NoteID(chi.URLParam(r, "noteID"))

	updated, err := s.uc.Note.Update(ctx, note)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, noteFromModel(updated))
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Note.Delete(ctx, tenantFromContext(ctx), types.NoteID(chi.URLParam(r, "noteID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
