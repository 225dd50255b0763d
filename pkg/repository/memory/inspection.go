package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type inspectionKey struct {
	TenantID types.TenantID
	ID       types.InspectionID
}

type inspectionRepository struct {
	mu          sync.RWMutex
	inspections map[inspectionKey]*model.Inspection
	order       []inspectionKey
}

func newInspectionRepository() *inspectionRepository {
	return &inspectionRepository{
		inspections: make(map[inspectionKey]*model.Inspection),
	}
}

func copyInspection(i *model.Inspection) *model.Inspection {
	copied := *i
	copied.Data = copyData(i.Data)
	return &copied
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copyInspection(inspection)
	if saved.ID == "" {
		saved.ID = model.NewInspectionID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := inspectionKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.inspections[key]; !exists {
		r.order = append(r.order, key)
	}
	r.inspections[key] = saved

	return copyInspection(saved), nil
}

func (r *inspectionRepository) Get(ctx context.Context, tenantID types.TenantID, id types.InspectionID) (*model.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inspection, ok := r.inspections[inspectionKey{TenantID: tenantID, ID: id}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "inspection not found",
			goerr.V("tenant_id", tenantID), goerr.V("inspection_id", id))
	}
	return copyInspection(inspection), nil
}

func (r *inspectionRepository) Update(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := inspectionKey{TenantID: inspection.TenantID, ID: inspection.ID}
	existing, ok := r.inspections[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "inspection not found",
			goerr.V("tenant_id", inspection.TenantID), goerr.V("inspection_id", inspection.ID))
	}

	saved := copyInspection(inspection)
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.inspections[key] = saved

	return copyInspection(saved), nil
}

func (r *inspectionRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.InspectionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := inspectionKey{TenantID: tenantID, ID: id}
	if _, ok := r.inspections[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "inspection not found",
			goerr.V("tenant_id", tenantID), goerr.V("inspection_id", id))
	}
	delete(r.inspections, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *inspectionRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inspections := make([]*model.Inspection, 0)
	for _, key := range r.order {
		if key.TenantID == tenantID {
			inspections = append(inspections, copyInspection(r.inspections[key]))
		}
	}
	return inspections, nil
}

func (r *inspectionRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	inspections := make([]*model.Inspection, 0)
	for _, key := range r.order {
		inspection := r.inspections[key]
		if key.TenantID == tenantID && inspection.BuildingID == buildingID {
			inspections = append(inspections, copyInspection(inspection))
		}
	}
	return inspections, nil
}

func (r *inspectionRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for key, inspection := range r.inspections {
		if key.TenantID == tenantID && inspection.TemplateID == templateID {
			count++
		}
	}
	return count, nil
}
