package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
)

type TaskUseCase struct {
	repo interfaces.Repository
}

func NewTaskUseCase(repo interfaces.Repository) *TaskUseCase {
	return &TaskUseCase{repo: repo}
}

func taskFormData(t *model.Task) map[string]any {
	data := make(map[string]any, len(t.Data)+4)
	for k, v := range t.Data {
		data[k] = v
	}
	data["title"] = t.Title
	data["status"] = t.Status.String()
	data["priority"] = t.Priority.String()
	data["due_date"] = t.DueDate
	return data
}

func (uc *TaskUseCase) validate(ctx context.Context, t *model.Task) error {
	validator, err := formValidator(ctx, uc.repo, t.TenantID, types.EntityTypeTask, t.TemplateID)
	if err != nil {
		return err
	}
	return validator.Validate(taskFormData(t))
}

func (uc *TaskUseCase) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	if err := uc.validate(ctx, t); err != nil {
		return nil, err
	}

	created, err := uc.repo.Task().Create(ctx, t)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task")
	}
	return created, nil
}

func (uc *TaskUseCase) Get(ctx context.Context, tenantID types.TenantID, id types.TaskID) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}
	return task, nil
}

func (uc *TaskUseCase) Update(ctx context.Context, t *model.Task) (*model.Task, error) {
	if err := uc.validate(ctx, t); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Task().Update(ctx, t)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V(TaskIDKey, t.ID))
	}
	return updated, nil
}

func (uc *TaskUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.TaskID) error {
	if err := uc.repo.Task().Delete(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete task", goerr.V(TaskIDKey, id))
	}
	return nil
}

func (uc *TaskUseCase) List(ctx context.Context, tenantID types.TenantID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().List(ctx, tenantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks")
	}
	return tasks, nil
}

func (uc *TaskUseCase) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().ListByBuilding(ctx, tenantID, buildingID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list building tasks", goerr.V(BuildingIDKey, buildingID))
	}
	return tasks, nil
}

func (uc *TaskUseCase) EditForm(ctx context.Context, tenantID types.TenantID, id types.TaskID) ([]render.Control, error) {
	task, err := uc.repo.Task().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeTask, task.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildForm(validator.Fields(), taskFormData(task)), nil
}

func (uc *TaskUseCase) NewForm(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) ([]render.Control, error) {
	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeTask, templateID)
	if err != nil {
		return nil, err
	}
	return render.BuildForm(validator.Fields(), nil), nil
}

func (uc *TaskUseCase) View(ctx context.Context, tenantID types.TenantID, id types.TaskID) ([]render.Display, error) {
	task, err := uc.repo.Task().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get task", goerr.V(TaskIDKey, id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeTask, task.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildView(validator.Fields(), taskFormData(task)), nil
}
