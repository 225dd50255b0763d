package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

func TestNoteRepository(t *testing.T) {
	runRepositorySuite(t, runNoteRepositoryTest)
}

func runNoteRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and ListByBuilding round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()
		buildingID := model.NewBuildingID()

		created, err := repo.Note().Create(ctx, &model.Note{
			TenantID:   tenantID,
			BuildingID: buildingID,
			Body:       "Roof access key is held by the caretaker",
			Author:     "j.smith",
			Pinned:     true,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(types.NoteID(""))
		gt.Bool(t, created.CreatedAt.IsZero()).False()

		notes, err := repo.Note().ListByBuilding(ctx, tenantID, buildingID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(notes)).Equal(1)
		gt.Value(t, notes[0].Body).Equal("Roof access key is held by the caretaker")
		gt.Bool(t, notes[0].Pinned).True()
	})

	t.Run("Update edits the body", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()
		buildingID := model.NewBuildingID()

		created, err := repo.Note().Create(ctx, &model.Note{
			TenantID:   tenantID,
			BuildingID: buildingID,
			Body:       "Draft",
		})
		gt.NoError(t, err).Required()

		created.Body = "Final"
		updated, err := repo.Note().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Body).Equal("Final")
		gt.Bool(t, updated.CreatedAt.Equal(created.CreatedAt)).True()
	})

	t.Run("Update of unknown note returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Note().Update(ctx, &model.Note{
			ID:       model.NewNoteID(),
			TenantID: newTenantID(),
			Body:     "Ghost",
		})
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("Delete removes a single note", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()
		buildingID := model.NewBuildingID()

		created, err := repo.Note().Create(ctx, &model.Note{
			TenantID:   tenantID,
			BuildingID: buildingID,
			Body:       "Short-lived",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Note().Delete(ctx, tenantID, created.ID)).Required()

		notes, err := repo.Note().ListByBuilding(ctx, tenantID, buildingID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(notes)).Equal(0)
	})

	t.Run("DeleteByBuilding removes only that building's notes", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()
		buildingID := model.NewBuildingID()
		otherID := model.NewBuildingID()

		for i := 0; i < 2; i++ {
			_, err := repo.Note().Create(ctx, &model.Note{
				TenantID:   tenantID,
				BuildingID: buildingID,
				Body:       "Doomed",
			})
			gt.NoError(t, err).Required()
		}
		_, err := repo.Note().Create(ctx, &model.Note{
			TenantID:   tenantID,
			BuildingID: otherID,
			Body:       "Survivor",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Note().DeleteByBuilding(ctx, tenantID, buildingID)).Required()

		gone, err := repo.Note().ListByBuilding(ctx, tenantID, buildingID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(gone)).Equal(0)

		kept, err := repo.Note().ListByBuilding(ctx, tenantID, otherID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(kept)).Equal(1)
	})
}
