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

func TestDocumentRepository(t *testing.T) {
	runRepositorySuite(t, runDocumentRepositoryTest)
}

func runDocumentRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()

		created, err := repo.Document().Create(ctx, &model.Document{
			TenantID:    tenantID,
			Title:       "Gas Safety Certificate",
			Category:    "certificates",
			FileRef:     "documents/abc123/cert.pdf",
			ContentType: "application/pdf",
			Size:        48213,
			ExpiresAt:   "2027-03-01",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(types.DocumentID(""))

		retrieved, err := repo.Document().Get(ctx, tenantID, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, retrieved.Title).Equal("Gas Safety Certificate")
		gt.Value(t, retrieved.FileRef).Equal("documents/abc123/cert.pdf")
		gt.Value(t, retrieved.ContentType).Equal("application/pdf")
		gt.Value(t, retrieved.Size).Equal(int64(48213))
		gt.Value(t, retrieved.ExpiresAt).Equal("2027-03-01")
	})

	t.Run("Update keeps file reference", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()

		created, err := repo.Document().Create(ctx, &model.Document{
			TenantID: tenantID,
			Title:    "EICR Report",
			FileRef:  "documents/xyz/report.pdf",
		})
		gt.NoError(t, err).Required()

		created.Title = "EICR Report 2026"
		updated, err := repo.Document().Update(ctx, created)
		gt.NoError(t, err).Required()
		gt.Value(t, updated.Title).Equal("EICR Report 2026")
		gt.Value(t, updated.FileRef).Equal("documents/xyz/report.pdf")
	})

	t.Run("Delete then Get returns ErrNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()

		created, err := repo.Document().Create(ctx, &model.Document{
			TenantID: tenantID,
			Title:    "Obsolete",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Document().Delete(ctx, tenantID, created.ID)).Required()

		_, err = repo.Document().Get(ctx, tenantID, created.ID)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("ListByBuilding filters on building", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		tenantID := newTenantID()
		buildingID := model.NewBuildingID()

		_, err := repo.Document().Create(ctx, &model.Document{
			TenantID:   tenantID,
			BuildingID: buildingID,
			Title:      "Attached",
		})
		gt.NoError(t, err).Required()
		_, err = repo.Document().Create(ctx, &model.Document{
			TenantID: tenantID,
			Title:    "Portfolio-wide",
		})
		gt.NoError(t, err).Required()

		attached, err := repo.Document().ListByBuilding(ctx, tenantID, buildingID)
		gt.NoError(t, err).Required()
		gt.Number(t, len(attached)).Equal(1)
		gt.Value(t, attached[0].Title).Equal("Attached")
	})
}
