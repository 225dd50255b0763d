package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// InspectionRepository defines data access for inspections
type InspectionRepository interface {
	Create(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error)
	Get(ctx context.Context, tenantID types.TenantID, id types.InspectionID) (*model.Inspection, error)
	Update(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error)
	Delete(ctx context.Context, tenantID types.TenantID, id types.InspectionID) error
	List(ctx context.Context, tenantID types.TenantID) ([]*model.Inspection, error)
	ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Inspection, error)
	CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error)
}
