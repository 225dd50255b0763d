package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type documentRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDocumentRepository(client *firestore.Client) *documentRepository {
	return &documentRepository{client: client}
}

func (r *documentRepository) documentsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_documents"
	}
	return "documents"
}

func (r *documentRepository) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	now := time.Now().UTC()
	created := *doc
	if created.ID == "" {
		created.ID = model.NewDocumentID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.documentsCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create document",
			goerr.V("tenant_id", created.TenantID), goerr.V("document_id", created.ID))
	}

	return &created, nil
}

func (r *documentRepository) Get(ctx context.Context, tenantID types.TenantID, id types.DocumentID) (*model.Document, error) {
	docSnap, err := r.client.Collection(r.documentsCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "document not found",
				goerr.V("tenant_id", tenantID), goerr.V("document_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get document", goerr.V("document_id", id))
	}

	var doc model.Document
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode document", goerr.V("document_id", id))
	}
	if doc.TenantID != tenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "document not found",
			goerr.V("tenant_id", tenantID), goerr.V("document_id", id))
	}

	return &doc, nil
}

func (r *documentRepository) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	existing, err := r.Get(ctx, doc.TenantID, doc.ID)
	if err != nil {
		return nil, err
	}

	updated := *doc
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = r.client.Collection(r.documentsCollection()).Doc(string(updated.ID)).Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update document",
			goerr.V("tenant_id", updated.TenantID), goerr.V("document_id", updated.ID))
	}

	return &updated, nil
}

func (r *documentRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.DocumentID) error {
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return err
	}

	_, err := r.client.Collection(r.documentsCollection()).Doc(string(id)).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete document",
			goerr.V("tenant_id", tenantID), goerr.V("document_id", id))
	}

	return nil
}

func (r *documentRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Document, error) {
	query := r.client.Collection(r.documentsCollection()).
		Where("TenantID", "==", string(tenantID))
	return r.listQuery(ctx, query, tenantID)
}

func (r *documentRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Document, error) {
	query := r.client.Collection(r.documentsCollection()).
		Where("TenantID", "==", string(tenantID)).
		Where("BuildingID", "==", string(buildingID))
	return r.listQuery(ctx, query, tenantID)
}

func (r *documentRepository) listQuery(ctx context.Context, query firestore.Query, tenantID types.TenantID) ([]*model.Document, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	docs := make([]*model.Document, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate documents", goerr.V("tenant_id", tenantID))
		}

		var doc model.Document
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode document", goerr.V("doc_id", docSnap.Ref.ID))
		}

		docs = append(docs, &doc)
	}

	return docs, nil
}

func (r *documentRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	return countByTemplate(ctx, r.client, r.documentsCollection(), tenantID, templateID)
}
