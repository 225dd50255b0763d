package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// TemplateRepository defines data access for field templates.
type TemplateRepository interface {
	// Create persists a new template and returns it with timestamps set
	Create(ctx context.Context, tmpl *model.Template) (*model.Template, error)

	// Get retrieves a template by ID within a tenant
	Get(ctx context.Context, tenantID types.TenantID, id types.TemplateID) (*model.Template, error)

	// Update replaces the stored template (whole field list, no merge)
	Update(ctx context.Context, tmpl *model.Template) (*model.Template, error)

	// Delete removes a template. Returns ErrTemplateInUse if any entity
	// still references it.
	Delete(ctx context.Context, tenantID types.TenantID, id types.TemplateID) error

	// List returns a tenant's templates, filtered by entity classification
	// when entity is non-empty
	List(ctx context.Context, tenantID types.TenantID, entity types.EntityType) ([]*model.Template, error)
}
