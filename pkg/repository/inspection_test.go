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

func TestInspectionRepository(t *testing.T) {
	runRepositorySuite(t, runInspectionRepositoryTest)
}

func runInspectionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()

		created, err := repo.Inspection().Create(ctx, &model.Inspection{
			TenantID:     tenantID,
			Title:        "Annual fire risk assessment",
			Status:       types.InspectionStatusScheduled,
			ScheduledFor: "2026-10-15",
			Data:         map[string]any{"assessor": "K. Patel"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(types.InspectionID(""))

		retrieved, err := repo.Inspection().Get(ctx, tenantID, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Title).Equal("Annual fire risk assessment")
		gt.Value(t, retrieved.Status).Equal(types.InspectionStatusScheduled)
		gt.Value(t, retrieved.ScheduledFor).Equal("2026-10-15")
	})

	t.Run("Update records an outcome", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()

		created, err := repo.Inspection().Create(ctx, &model.Inspection{
			TenantID:     tenantID,
			Title:        "Lift inspection",
			Status:       types.InspectionStatusScheduled,
			ScheduledFor: "2026-09-01",
		})
		gt.NoError(t, err).Required()

		created.Status = types.InspectionStatusCompleted
		created.Outcome = "No defects found"

		updated, err := repo.Inspection().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Status).Equal(types.InspectionStatusCompleted)
		gt.Value(t, updated.Outcome).Equal("No defects found")
	})

	t.Run("Delete then Get returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()

		created, err := repo.Inspection().Create(ctx, &model.Inspection{
			TenantID: tenantID,
			Title:    "Cancelled",
			Status:   types.InspectionStatusScheduled,
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Inspection().Delete(ctx, tenantID, created.ID)).Required()

		_, err = repo.Inspection().Get(ctx, tenantID, created.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("ListByBuilding filters on building", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()
		buildingID := model.NewBuildingID()

		_, err := repo.Inspection().Create(ctx, &model.Inspection{
			TenantID:   tenantID,
			BuildingID: buildingID,
			Title:      "Attached",
			Status:     types.InspectionStatusScheduled,
		})
		gt.NoError(t, err).Required()
		_, err = repo.Inspection().Create(ctx, &model.Inspection{
			TenantID: tenantID,
			Title:    "Unattached",
			Status:   types.InspectionStatusScheduled,
		})
		gt.NoError(t, err).Required()

		attached, err := repo.Inspection().ListByBuilding(ctx, tenantID, buildingID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(attached)).Equal(1)
		gt.Value(t, attached[0].BuildingID).Equal(buildingID)
	})
}
