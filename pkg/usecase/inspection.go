package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
)

type InspectionUseCase struct {
	repo interfaces.Repository
}

func NewInspectionUseCase(repo interfaces.Repository) *InspectionUseCase {
	return &InspectionUseCase{repo: repo}
}

func inspectionFormData(i *model.Inspection) map[string]any {
	data := make(map[string]any, len(i.Data)+3)
	for k, v := range i.Data {
		data[k] = v
	}
	data["title"] = i.Title
	data["status"] = i.Status.String()
	data["scheduled_for"] = i.ScheduledFor
	return data
}

func (uc *InspectionUseCase) validate(ctx context.Context, i *model.Inspection) error {
	validator, err := formValidator(ctx, uc.repo, i.TenantID, types.EntityTypeInspection, i.TemplateID)
	if err != nil {
		return err
	}
	return validator.Validate(inspectionFormData(i))
}

func (uc *InspectionUseCase) Create(ctx context.Context, i *model.Inspection) (*model.Inspection, error) {
	if err := uc.validate(ctx, i); err != nil {
		return nil, err
	}

	created, err := uc.repo.Inspection().Create(ctx, i)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create inspection")
	}
	return created, nil
}

func (uc *InspectionUseCase) Get(ctx context.Context, tenantID types.TenantID, id types.InspectionID) (*model.Inspection, error) {
	inspection, err := uc.repo.Inspection().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inspection", goerr.V("inspection_id", id))
	}
	return inspection, nil
}

func (uc *InspectionUseCase) Update(ctx context.Context, i *model.Inspection) (*model.Inspection, error) {
	if err := uc.validate(ctx, i); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Inspection().Update(ctx, i)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update inspection", goerr.V("inspection_id", i.ID))
	}
	return updated, nil
}

func (uc *InspectionUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.InspectionID) error {
	if err := uc.repo.Inspection().Delete(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete inspection", goerr.V("inspection_id", id))
	}
	return nil
}

func (uc *InspectionUseCase) List(ctx context.Context, tenantID types.TenantID) ([]*model.Inspection, error) {
	inspections, err := uc.repo.Inspection().List(ctx, tenantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list inspections")
	}
	return inspections, nil
}

func (uc *InspectionUseCase) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Inspection, error) {
	inspections, err := uc.repo.Inspection().ListByBuilding(ctx, tenantID, buildingID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list building inspections", goerr.V(BuildingIDKey, buildingID))
	}
	return inspections, nil
}

func (uc *InspectionUseCase) EditForm(ctx context.Context, tenantID types.TenantID, id types.InspectionID) ([]render.Control, error) {
	inspection, err := uc.repo.Inspection().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inspection", goerr.V("inspection_id", id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeInspection, inspection.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildForm(validator.Fields(), inspectionFormData(inspection)), nil
}

func (uc *InspectionUseCase) NewForm(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) ([]render.Control, error) {
	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeInspection, templateID)
	if err != nil {
		return nil, err
	}
	return render.BuildForm(validator.Fields(), nil), nil
}

func (uc *InspectionUseCase) View(ctx context.Context, tenantID types.TenantID, id types.InspectionID) ([]render.Display, error) {
	inspection, err := uc.repo.Inspection().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inspection", goerr.V("inspection_id", id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeInspection, inspection.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildView(validator.Fields(), inspectionFormData(inspection)), nil
}
