package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) tasksCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_tasks"
	}
	return "tasks"
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	now := time.Now().UTC()
	created := *task
	if created.ID == "" {
		created.ID = model.NewTaskID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.tasksCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task",
			goerr.V("tenant_id", created.TenantID), goerr.V("task_id", created.ID))
	}

	return &created, nil
}

func (r *taskRepository) Get(ctx context.Context, tenantID types.TenantID, id types.TaskID) (*model.Task, error) {
	docSnap, err := r.client.Collection(r.tasksCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found",
				goerr.V("tenant_id", tenantID), goerr.V("task_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("task_id", id))
	}

	var task model.Task
	if err := docSnap.DataTo(&task); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("task_id", id))
	}
	if task.TenantID != tenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found",
			goerr.V("tenant_id", tenantID), goerr.V("task_id", id))
	}

	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	existing, err := r.Get(ctx, task.TenantID, task.ID)
	if err != nil {
		return nil, err
	}

	updated := *task
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = r.client.Collection(r.tasksCollection()).Doc(string(updated.ID)).Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task",
			goerr.V("tenant_id", updated.TenantID), goerr.V("task_id", updated.ID))
	}

	return &updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.TaskID) error {
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return err
	}

	_, err := r.client.Collection(r.tasksCollection()).Doc(string(id)).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete task",
			goerr.V("tenant_id", tenantID), goerr.V("task_id", id))
	}

	return nil
}

func (r *taskRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Task, error) {
	query := r.client.Collection(r.tasksCollection()).
		Where("TenantID", "==", string(tenantID))
	return r.listQuery(ctx, query, tenantID)
}

func (r *taskRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Task, error) {
	query := r.client.Collection(r.tasksCollection()).
		Where("TenantID", "==", string(tenantID)).
		Where("BuildingID", "==", string(buildingID))
	return r.listQuery(ctx, query, tenantID)
}

func (r *taskRepository) listQuery(ctx context.Context, query firestore.Query, tenantID types.TenantID) ([]*model.Task, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	tasks := make([]*model.Task, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks", goerr.V("tenant_id", tenantID))
		}

		var task model.Task
		if err := docSnap.DataTo(&task); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}

		tasks = append(tasks, &task)
	}

	return tasks, nil
}

func (r *taskRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	return countByTemplate(ctx, r.client, r.tasksCollection(), tenantID, templateID)
}
