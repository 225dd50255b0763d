package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// Tenant represents an isolated organization. Tenants are declared in the
// tenant configuration file, not stored in the repository.
type Tenant struct {
	ID   types.TenantID
	Name string
}

// ErrTenantNotFound is returned when a tenant is not found in the registry
var ErrTenantNotFound = goerr.New("tenant not found")

// TenantRegistry holds tenant configurations. It carries settings only,
// never repository or usecase instances.
type TenantRegistry struct {
	entries map[types.TenantID]*Tenant
	order   []types.TenantID // preserves declaration order
}

// NewTenantRegistry creates a new empty TenantRegistry
func NewTenantRegistry() *TenantRegistry {
	return &TenantRegistry{
		entries: make(map[types.TenantID]*Tenant),
	}
}

// Register adds a tenant to the registry
func (r *TenantRegistry) Register(tenant *Tenant) {
	if _, exists := r.entries[tenant.ID]; !exists {
		r.order = append(r.order, tenant.ID)
	}
	r.entries[tenant.ID] = tenant
}

// Get retrieves a tenant by ID
func (r *TenantRegistry) Get(id types.TenantID) (*Tenant, error) {
	tenant, ok := r.entries[id]
	if !ok {
		return nil, goerr.Wrap(ErrTenantNotFound, "tenant not found",
			goerr.V("tenant_id", id))
	}
	return tenant, nil
}

// List returns all registered tenants in declaration order
func (r *TenantRegistry) List() []*Tenant {
	result := make([]*Tenant, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.entries[id])
	}
	return result
}
