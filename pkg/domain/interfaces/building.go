package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// BuildingRepository defines data access for buildings
type BuildingRepository interface {
	Create(ctx context.Context, building *model.Building) (*model.Building, error)
	Get(ctx context.Context, tenantID types.TenantID, id types.BuildingID) (*model.Building, error)
	Update(ctx context.Context, building *model.Building) (*model.Building, error)
	Delete(ctx context.Context, tenantID types.TenantID, id types.BuildingID) error
	List(ctx context.Context, tenantID types.TenantID) ([]*model.Building, error)

	// CountByTemplate returns how many buildings reference the template
	CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error)
}
