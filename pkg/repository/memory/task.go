package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type taskKey struct {
	TenantID types.TenantID
	ID       types.TaskID
}

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[taskKey]*model.Task
	order []taskKey
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks: make(map[taskKey]*model.Task),
	}
}

func copyTask(t *model.Task) *model.Task {
	copied := *t
	copied.Data = copyData(t.Data)
	return &copied
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copyTask(task)
	if saved.ID == "" {
		saved.ID = model.NewTaskID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := taskKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.tasks[key]; !exists {
		r.order = append(r.order, key)
	}
	r.tasks[key] = saved

	return copyTask(saved), nil
}

func (r *taskRepository) Get(ctx context.Context, tenantID types.TenantID, id types.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[taskKey{TenantID: tenantID, ID: id}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found",
			goerr.V("tenant_id", tenantID), goerr.V("task_id", id))
	}
	return copyTask(task), nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := taskKey{TenantID: task.TenantID, ID: task.ID}
	existing, ok := r.tasks[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found",
			goerr.V("tenant_id", task.TenantID), goerr.V("task_id", task.ID))
	}

	saved := copyTask(task)
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.tasks[key] = saved

	return copyTask(saved), nil
}

func (r *taskRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := taskKey{TenantID: tenantID, ID: id}
	if _, ok := r.tasks[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "task not found",
			goerr.V("tenant_id", tenantID), goerr.V("task_id", id))
	}
	delete(r.tasks, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *taskRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.Task, 0)
	for _, key := range r.order {
		if key.TenantID == tenantID {
			tasks = append(tasks, copyTask(r.tasks[key]))
		}
	}
	return tasks, nil
}

func (r *taskRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*model.Task, 0)
	for _, key := range r.order {
		task := r.tasks[key]
		if key.TenantID == tenantID && task.BuildingID == buildingID {
			tasks = append(tasks, copyTask(task))
		}
	}
	return tasks, nil
}

func (r *taskRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for key, task := range r.tasks {
		if key.TenantID == tenantID && task.TemplateID == templateID {
			count++
		}
	}
	return count, nil
}
