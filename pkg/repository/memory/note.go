package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type noteKey struct {
	TenantID types.TenantID
	ID       types.NoteID
}

type noteRepository struct {
	mu    sync.RWMutex
	notes map[noteKey]*model.Note
	order []noteKey
}

func newNoteRepository() *noteRepository {
	return &noteRepository{
		notes: make(map[noteKey]*model.Note),
	}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *note
	if saved.ID == "" {
		saved.ID = model.NewNoteID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := noteKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.notes[key]; !exists {
		r.order = append(r.order, key)
	}
	r.notes[key] = &saved

	out := saved
	return &out, nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := noteKey{TenantID: note.TenantID, ID: note.ID}
	existing, ok := r.notes[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "note not found",
			goerr.V("tenant_id", note.TenantID), goerr.V("note_id", note.ID))
	}

	saved := *note
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.notes[key] = &saved

	out := saved
	return &out, nil
}

func (r *noteRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.NoteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := noteKey{TenantID: tenantID, ID: id}
	if _, ok := r.notes[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "note not found",
			goerr.V("tenant_id", tenantID), goerr.V("note_id", id))
	}
	delete(r.notes, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *noteRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*model.Note, 0)
	for _, key := range r.order {
		note := r.notes[key]
		if key.TenantID == tenantID && note.BuildingID == buildingID {
			out := *note
			notes = append(notes, &out)
		}
	}
	return notes, nil
}

func (r *noteRepository) DeleteByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	remaining := r.order[:0]
	for _, key := range r.order {
		note := r.notes[key]
		if key.TenantID == tenantID && note.BuildingID == buildingID {
			delete(r.notes, key)
			continue
		}
		remaining = append(remaining, key)
	}
	r.order = remaining

	return nil
}
