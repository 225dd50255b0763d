package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NoteRepository defines data access for building notes
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) (*model.Note, error)
	Update(ctx context.Context, note *model.Note) (*model.Note, error)
	Delete(ctx context.Context, tenantID types.TenantID, id types.NoteID) error
	ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Note, error)
	DeleteByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) error
}
