package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type contactRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (req contactRequest) toModel(tenantID types.TenantID) *model.Contact {
	return &model.Contact{
		TenantID: tenantID,
		Name:     req.Name,
		Role:     req.Role,
		Company:  req.Company,
		Email:    req.Email,
		Phone:    req.Phone,
	}
}

func contactFromModel(c *model.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Role:      c.Role,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *Server) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Contact.Create(ctx, req.toModel(tenantFromContext(ctx)))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, contactFromModel(created))
}

func (s *Server) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contact, err := s.uc.Contact.Get(ctx, tenantFromContext(ctx), types.ContactID(chi.URLParam(r, "contactID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, contactFromModel(contact))
}

func (s *Server) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	contact := req.toModel(tenantFromContext(ctx))
	contact.ID = types.ContactID(chi.URLParam(r, "contactID"))

	updated, err := s.uc.Contact.Update(ctx, contact)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, contactFromModel(updated))
}

func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Contact.Delete(ctx, tenantFromContext(ctx), types.ContactID(chi.URLParam(r, "contactID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contacts, err := s.uc.Contact.List(ctx, tenantFromContext(ctx))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]contactResponse, len(contacts))
	for i, c := range contacts {
		resp[i] = contactFromModel(c)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"contacts": resp})
}
