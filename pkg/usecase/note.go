package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type NoteUseCase struct {
	repo interfaces.Repository
}

func NewNoteUseCase(repo interfaces.Repository) *NoteUseCase {
	return &NoteUseCase{repo: repo}
}

// Create attaches a note to a building. The building must exist; notes do
// not dangle the way template references may.
func (uc *NoteUseCase) Create(ctx context.Context, n *model.Note) (*model.Note, error) {
	if n.Body == "" {
		return nil, goerr.Wrap(model.ErrMissingRequired, "note body is required")
	}

	if _, err := uc.repo.Building().Get(ctx, n.TenantID, n.BuildingID); err != nil {
		return nil, goerr.Wrap(err, "failed to resolve note's building", goerr.V(BuildingIDKey, n.BuildingID))
	}

	created, err := uc.repo.Note().Create(ctx, n)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create note")
	}
	return created, nil
}

func (uc *NoteUseCase) Update(ctx context.Context, n *model.Note) (*model.Note, error) {
	if n.Body == "" {
		return nil, goerr.Wrap(model.ErrMissingRequired, "note body is required")
	}

	updated, err := uc.repo.Note().Update(ctx, n)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update note", goerr.V("note_id", n.ID))
	}
	return updated, nil
}

func (uc *NoteUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.NoteID) error {
	if err := uc.repo.Note().Delete(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete note", goerr.V("note_id", id))
	}
	return nil
}

func (uc *NoteUseCase) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Note, error) {
	notes, err := uc.repo.Note().ListByBuilding(ctx, tenantID, buildingID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list building notes", goerr.V(BuildingIDKey, buildingID))
	}
	return notes, nil
}
