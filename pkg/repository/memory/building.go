package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type buildingKey struct {
	TenantID types.TenantID
	ID       types.BuildingID
}

type buildingRepository struct {
	mu        sync.RWMutex
	buildings map[buildingKey]*model.Building
	order     []buildingKey
}

func newBuildingRepository() *buildingRepository {
	return &buildingRepository{
		buildings: make(map[buildingKey]*model.Building),
	}
}

func copyBuilding(b *model.Building) *model.Building {
	copied := *b
	copied.Data = copyData(b.Data)
	return &copied
}

func (r *buildingRepository) Create(ctx context.Context, building *model.Building) (*model.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copyBuilding(building)
	if saved.ID == "" {
		saved.ID = model.NewBuildingID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := buildingKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.buildings[key]; !exists {
		r.order = append(r.order, key)
	}
	r.buildings[key] = saved

	return copyBuilding(saved), nil
}

func (r *buildingRepository) Get(ctx context.Context, tenantID types.TenantID, id types.BuildingID) (*model.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	building, ok := r.buildings[buildingKey{TenantID: tenantID, ID: id}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "building not found",
			goerr.V("tenant_id", tenantID), goerr.V("building_id", id))
	}
	return copyBuilding(building), nil
}

func (r *buildingRepository) Update(ctx context.Context, building *model.Building) (*model.Building, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := buildingKey{TenantID: building.TenantID, ID: building.ID}
	existing, ok := r.buildings[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "building not found",
			goerr.V("tenant_id", building.TenantID), goerr.V("building_id", building.ID))
	}

	saved := copyBuilding(building)
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.buildings[key] = saved

	return copyBuilding(saved), nil
}

func (r *buildingRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.BuildingID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := buildingKey{TenantID: tenantID, ID: id}
	if _, ok := r.buildings[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "building not found",
			goerr.V("tenant_id", tenantID), goerr.V("building_id", id))
	}
	delete(r.buildings, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *buildingRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Building, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buildings := make([]*model.Building, 0)
	for _, key := range r.order {
		if key.TenantID == tenantID {
			buildings = append(buildings, copyBuilding(r.buildings[key]))
		}
	}
	return buildings, nil
}

func (r *buildingRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for key, building := range r.buildings {
		if key.TenantID == tenantID && building.TemplateID == templateID {
			count++
		}
	}
	return count, nil
}
