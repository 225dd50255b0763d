package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type templateKey struct {
	TenantID types.TenantID
	ID       types.TemplateID
}

type templateRepository struct {
	mu        sync.RWMutex
	templates map[templateKey]*model.Template
	order     []templateKey

	buildings   *buildingRepository
	tasks       *taskRepository
	documents   *documentRepository
	inspections *inspectionRepository
}

func newTemplateRepository(b *buildingRepository, t *taskRepository, d *documentRepository, i *inspectionRepository) *templateRepository {
	return &templateRepository{
		templates:   make(map[templateKey]*model.Template),
		buildings:   b,
		tasks:       t,
		documents:   d,
		inspections: i,
	}
}

func copyTemplate(tmpl *model.Template) *model.Template {
	copied := *tmpl
	copied.Fields = make([]model.FieldSchema, len(tmpl.Fields))
	copy(copied.Fields, tmpl.Fields)
	for i, f := range copied.Fields {
		if len(f.Options) > 0 {
			opts := make([]string, len(f.Options))
			copy(opts, f.Options)
			copied.Fields[i].Options = opts
		}
	}
	return &copied
}

func (r *templateRepository) Create(ctx context.Context, tmpl *model.Template) (*model.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copyTemplate(tmpl)
	if saved.ID == "" {
		saved.ID = model.NewTemplateID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := templateKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.templates[key]; !exists {
		r.order = append(r.order, key)
	}
	r.templates[key] = saved

	return copyTemplate(saved), nil
}

func (r *templateRepository) Get(ctx context.Context, tenantID types.TenantID, id types.TemplateID) (*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[templateKey{TenantID: tenantID, ID: id}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "template not found",
			goerr.V("tenant_id", tenantID), goerr.V("template_id", id))
	}
	return copyTemplate(tmpl), nil
}

func (r *templateRepository) Update(ctx context.Context, tmpl *model.Template) (*model.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := templateKey{TenantID: tmpl.TenantID, ID: tmpl.ID}
	existing, ok := r.templates[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "template not found",
			goerr.V("tenant_id", tmpl.TenantID), goerr.V("template_id", tmpl.ID))
	}

	saved := copyTemplate(tmpl)
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.templates[key] = saved

	return copyTemplate(saved), nil
}

func (r *templateRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.TemplateID) error {
	refs, err := r.countReferences(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return goerr.Wrap(interfaces.ErrTemplateInUse, "template is in use",
			goerr.V("template_id", id), goerr.V("references", refs))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := templateKey{TenantID: tenantID, ID: id}
	if _, ok := r.templates[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "template not found",
			goerr.V("tenant_id", tenantID), goerr.V("template_id", id))
	}
	delete(r.templates, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *templateRepository) countReferences(ctx context.Context, tenantID types.TenantID, id types.TemplateID) (int, error) {
	total := 0
	for _, count := range []func(context.Context, types.TenantID, types.TemplateID) (int, error){
		r.buildings.CountByTemplate,
		r.tasks.CountByTemplate,
		r.documents.CountByTemplate,
		r.inspections.CountByTemplate,
	} {
		n, err := count(ctx, tenantID, id)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *templateRepository) List(ctx context.Context, tenantID types.TenantID, entity types.EntityType) ([]*model.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]*model.Template, 0)
	for _, key := range r.order {
		if key.TenantID != tenantID {
			continue
		}
		tmpl := r.templates[key]
		if entity != "" && tmpl.Entity != entity {
			continue
		}
		templates = append(templates, copyTemplate(tmpl))
	}

	return templates, nil
}
