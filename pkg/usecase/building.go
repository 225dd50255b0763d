package usecase

import (
	"context"
	"io"
	"path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
)

type BuildingUseCase struct {
	repo    interfaces.Repository
	storage interfaces.Storage
}

func NewBuildingUseCase(repo interfaces.Repository, storage interfaces.Storage) *BuildingUseCase {
	return &BuildingUseCase{repo: repo, storage: storage}
}

// buildingFormData merges the fixed attributes into the custom data map so
// built-in fields validate and render through the same path as template
// fields.
func buildingFormData(b *model.Building) map[string]any {
	data := make(map[string]any, len(b.Data)+2)
	for k, v := range b.Data {
		data[k] = v
	}
	data["name"] = b.Name
	data["image"] = b.ImageRef
	return data
}

func (uc *BuildingUseCase) validate(ctx context.Context, b *model.Building) error {
	validator, err := formValidator(ctx, uc.repo, b.TenantID, types.EntityTypeBuilding, b.TemplateID)
	if err != nil {
		return err
	}
	return validator.Validate(buildingFormData(b))
}

func (uc *BuildingUseCase) Create(ctx context.Context, b *model.Building) (*model.Building, error) {
	if err := uc.validate(ctx, b); err != nil {
		return nil, err
	}

	created, err := uc.repo.Building().Create(ctx, b)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create building")
	}
	return created, nil
}

func (uc *BuildingUseCase) Get(ctx context.Context, tenantID types.TenantID, id types.BuildingID) (*model.Building, error) {
	building, err := uc.repo.Building().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get building", goerr.V(BuildingIDKey, id))
	}
	return building, nil
}

func (uc *BuildingUseCase) Update(ctx context.Context, b *model.Building) (*model.Building, error) {
	if err := uc.validate(ctx, b); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Building().Update(ctx, b)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update building", goerr.V(BuildingIDKey, b.ID))
	}
	return updated, nil
}

// Delete removes the building and its notes. Tasks, documents and
// inspections keep their BuildingID as a dangling reference; they remain
// listable at the tenant level.
func (uc *BuildingUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.BuildingID) error {
	if err := uc.repo.Building().Delete(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete building", goerr.V(BuildingIDKey, id))
	}

	if err := uc.repo.Note().DeleteByBuilding(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete building notes", goerr.V(BuildingIDKey, id))
	}

	return nil
}

func (uc *BuildingUseCase) List(ctx context.Context, tenantID types.TenantID) ([]*model.Building, error) {
	buildings, err := uc.repo.Building().List(ctx, tenantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list buildings")
	}
	return buildings, nil
}

// UploadImage stores a building photo and records its reference as the
// built-in image field value.
func (uc *BuildingUseCase) UploadImage(ctx context.Context, tenantID types.TenantID, id types.BuildingID, r io.Reader, contentType, filename string) (*model.Building, error) {
	if uc.storage == nil {
		return nil, goerr.Wrap(ErrStorageNotConfigured, "cannot upload building image")
	}

	building, err := uc.repo.Building().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get building", goerr.V(BuildingIDKey, id))
	}

	ref := path.Join("tenants", string(tenantID), "buildings", string(id), filename)
	if err := uc.storage.Put(ctx, ref, r, contentType); err != nil {
		return nil, goerr.Wrap(ErrUploadFailed, "failed to store building image",
			goerr.V(BuildingIDKey, id), goerr.V("ref", ref), goerr.V("cause", err))
	}

	building.ImageRef = ref
	updated, err := uc.repo.Building().Update(ctx, building)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to record building image",
			goerr.V(BuildingIDKey, id), goerr.V("orphaned_ref", ref))
	}

	return updated, nil
}

// EditForm assembles edit controls for an existing building: built-in
// fields first, then the template's custom fields, each carrying the
// stored value.
func (uc *BuildingUseCase) EditForm(ctx context.Context, tenantID types.TenantID, id types.BuildingID) ([]render.Control, error) {
	building, err := uc.repo.Building().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get building", goerr.V(BuildingIDKey, id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeBuilding, building.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildForm(validator.Fields(), buildingFormData(building)), nil
}

// NewForm assembles empty edit controls for creating a building under the
// given template.
func (uc *BuildingUseCase) NewForm(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) ([]render.Control, error) {
	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeBuilding, templateID)
	if err != nil {
		return nil, err
	}
	return render.BuildForm(validator.Fields(), nil), nil
}

// View assembles the read-only display descriptors for a building
func (uc *BuildingUseCase) View(ctx context.Context, tenantID types.TenantID, id types.BuildingID) ([]render.Display, error) {
	building, err := uc.repo.Building().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get building", goerr.V(BuildingIDKey, id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeBuilding, building.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildView(validator.Fields(), buildingFormData(building)), nil
}
