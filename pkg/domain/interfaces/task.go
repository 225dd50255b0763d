package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// TaskRepository defines data access for compliance tasks
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	Get(ctx context.Context, tenantID types.TenantID, id types.TaskID) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, tenantID types.TenantID, id types.TaskID) error
	List(ctx context.Context, tenantID types.TenantID) ([]*model.Task, error)
	ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Task, error)
	CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error)
}
