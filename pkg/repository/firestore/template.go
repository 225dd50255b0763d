package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type templateRepository struct {
	client           *firestore.Client
	collectionPrefix string

	building   *buildingRepository
	task       *taskRepository
	document   *documentRepository
	inspection *inspectionRepository
}

func newTemplateRepository(client *firestore.Client, building *buildingRepository, task *taskRepository, document *documentRepository, inspection *inspectionRepository) *templateRepository {
	return &templateRepository{
		client:     client,
		building:   building,
		task:       task,
		document:   document,
		inspection: inspection,
	}
}

func (r *templateRepository) templatesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_templates"
	}
	return "templates"
}

func (r *templateRepository) Create(ctx context.Context, tmpl *model.Template) (*model.Template, error) {
	now := time.Now().UTC()
	created := *tmpl
	if created.ID == "" {
		created.ID = model.NewTemplateID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.templatesCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create template",
			goerr.V("tenant_id", created.TenantID), goerr.V("template_id", created.ID))
	}

	return &created, nil
}

func (r *templateRepository) Get(ctx context.Context, tenantID types.TenantID, id types.TemplateID) (*model.Template, error) {
	docSnap, err := r.client.Collection(r.templatesCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "template not found",
				goerr.V("tenant_id", tenantID), goerr.V("template_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get template", goerr.V("template_id", id))
	}

	var tmpl model.Template
	if err := docSnap.DataTo(&tmpl); err != nil {
		return nil, goerr.Wrap(err, "failed to decode template", goerr.V("template_id", id))
	}
	if tmpl.TenantID != tenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "template not found",
			goerr.V("tenant_id", tenantID), goerr.V("template_id", id))
	}

	return &tmpl, nil
}

func (r *templateRepository) Update(ctx context.Context, tmpl *model.Template) (*model.Template, error) {
	existing, err := r.Get(ctx, tmpl.TenantID, tmpl.ID)
	if err != nil {
		return nil, err
	}

	updated := *tmpl
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = r.client.Collection(r.templatesCollection()).Doc(string(updated.ID)).Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update template",
			goerr.V("tenant_id", updated.TenantID), goerr.V("template_id", updated.ID))
	}

	return &updated, nil
}

func (r *templateRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.TemplateID) error {
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return err
	}

	inUse, err := r.referenced(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if inUse {
		return goerr.Wrap(interfaces.ErrTemplateInUse, "template is still referenced",
			goerr.V("tenant_id", tenantID), goerr.V("template_id", id))
	}

	_, err = r.client.Collection(r.templatesCollection()).Doc(string(id)).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete template",
			goerr.V("tenant_id", tenantID), goerr.V("template_id", id))
	}

	return nil
}

// referenced checks the entity collections in parallel for any document
// that still points at the template.
func (r *templateRepository) referenced(ctx context.Context, tenantID types.TenantID, id types.TemplateID) (bool, error) {
	collections := []string{
		r.building.buildingsCollection(),
		r.task.tasksCollection(),
		r.document.documentsCollection(),
		r.inspection.inspectionsCollection(),
	}

	found := make([]bool, len(collections))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range collections {
		eg.Go(func() error {
			iter := r.client.Collection(name).
				Where("TenantID", "==", string(tenantID)).
				Where("TemplateID", "==", string(id)).
				Limit(1).
				Documents(ctx)
			defer iter.Stop()

			_, err := iter.Next()
			if err == iterator.Done {
				return nil
			}
			if err != nil {
				return goerr.Wrap(err, "failed to check template references", goerr.V("collection", name))
			}
			found[i] = true
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return false, err
	}

	for _, f := range found {
		if f {
			return true, nil
		}
	}
	return false, nil
}

func (r *templateRepository) List(ctx context.Context, tenantID types.TenantID, entity types.EntityType) ([]*model.Template, error) {
	query := r.client.Collection(r.templatesCollection()).
		Where("TenantID", "==", string(tenantID))
	if entity != "" {
		query = query.Where("Entity", "==", string(entity))
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	templates := make([]*model.Template, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate templates", goerr.V("tenant_id", tenantID))
		}

		var tmpl model.Template
		if err := docSnap.DataTo(&tmpl); err != nil {
			return nil, goerr.Wrap(err, "failed to decode template", goerr.V("doc_id", docSnap.Ref.ID))
		}

		templates = append(templates, &tmpl)
	}

	return templates, nil
}
