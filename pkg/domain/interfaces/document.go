package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// DocumentRepository defines data access for compliance documents
type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)
	Get(ctx context.Context, tenantID types.TenantID, id types.DocumentID) (*model.Document, error)
	Update(ctx context.Context, doc *model.Document) (*model.Document, error)
	Delete(ctx context.Context, tenantID types.TenantID, id types.DocumentID) error
	List(ctx context.Context, tenantID types.TenantID) ([]*model.Document, error)
	ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Document, error)
	CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error)
}
