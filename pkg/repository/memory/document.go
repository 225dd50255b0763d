package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type documentKey struct {
	TenantID types.TenantID
	ID       types.DocumentID
}

type documentRepository struct {
	mu        sync.RWMutex
	documents map[documentKey]*model.Document
	order     []documentKey
}

func newDocumentRepository() *documentRepository {
	return &documentRepository{
		documents: make(map[documentKey]*model.Document),
	}
}

func copyDocument(d *model.Document) *model.Document {
	copied := *d
	copied.Data = copyData(d.Data)
	return &copied
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := copyDocument(doc)
	if saved.ID == "" {
		saved.ID = model.NewDocumentID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := documentKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.documents[key]; !exists {
		r.order = append(r.order, key)
	}
	r.documents[key] = saved

	return copyDocument(saved), nil
}

func (r *documentRepository) Get(ctx context.Context, tenantID types.TenantID, id types.DocumentID) (*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.documents[documentKey{TenantID: tenantID, ID: id}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "document not found",
			goerr.V("tenant_id", tenantID), goerr.V("document_id", id))
	}
	return copyDocument(doc), nil
}

func (r *documentRepository) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := documentKey{TenantID: doc.TenantID, ID: doc.ID}
	existing, ok := r.documents[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "document not found",
			goerr.V("tenant_id", doc.TenantID), goerr.V("document_id", doc.ID))
	}

	saved := copyDocument(doc)
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.documents[key] = saved

	return copyDocument(saved), nil
}

func (r *documentRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.DocumentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := documentKey{TenantID: tenantID, ID: id}
	if _, ok := r.documents[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "document not found",
			goerr.V("tenant_id", tenantID), goerr.V("document_id", id))
	}
	delete(r.documents, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *documentRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	documents := make([]*model.Document, 0)
	for _, key := range r.order {
		if key.TenantID == tenantID {
			documents = append(documents, copyDocument(r.documents[key]))
		}
	}
	return documents, nil
}

func (r *documentRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	documents := make([]*model.Document, 0)
	for _, key := range r.order {
		doc := r.documents[key]
		if key.TenantID == tenantID && doc.BuildingID == buildingID {
			documents = append(documents, copyDocument(doc))
		}
	}
	return documents, nil
}

func (r *documentRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for key, doc := range r.documents {
		if key.TenantID == tenantID && doc.TemplateID == templateID {
			count++
		}
	}
	return count, nil
}
