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

type inspectionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newInspectionRepository(client *firestore.Client) *inspectionRepository {
	return &inspectionRepository{client: client}
}

func (r *inspectionRepository) inspectionsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_inspections"
	}
	return "inspections"
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	now := time.Now().UTC()
	created := *inspection
	if created.ID == "" {
		created.ID = model.NewInspectionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.inspectionsCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create inspection",
			goerr.V("tenant_id", created.TenantID), goerr.V("inspection_id", created.ID))
	}

	return &created, nil
}

func (r *inspectionRepository) Get(ctx context.Context, tenantID types.TenantID, id types.InspectionID) (*model.Inspection, error) {
	docSnap, err := r.client.Collection(r.inspectionsCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "inspection not found",
				goerr.V("tenant_id", tenantID), goerr.V("inspection_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get inspection", goerr.V("inspection_id", id))
	}

	var inspection model.Inspection
	if err := docSnap.DataTo(&inspection); err != nil {
		return nil, goerr.Wrap(err, "failed to decode inspection", goerr.V("inspection_id", id))
	}
	if inspection.TenantID != tenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "inspection not found",
			goerr.V("tenant_id", tenantID), goerr.V("inspection_id", id))
	}

	return &inspection, nil
}

func (r *inspectionRepository) Update(ctx context.Context, inspection *model.Inspection) (*model.Inspection, error) {
	existing, err := r.Get(ctx, inspection.TenantID, inspection.ID)
	if err != nil {
		return nil, err
	}

	updated := *inspection
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = r.client.Collection(r.inspectionsCollection()).Doc(string(updated.ID)).Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update inspection",
			goerr.V("tenant_id", updated.TenantID), goerr.V("inspection_id", updated.ID))
	}

	return &updated, nil
}

func (r *inspectionRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.InspectionID) error {
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return err
	}

	_, err := r.client.Collection(r.inspectionsCollection()).Doc(string(id)).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete inspection",
			goerr.V("tenant_id", tenantID), goerr.V("inspection_id", id))
	}

	return nil
}

func (r *inspectionRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Inspection, error) {
	query := r.client.Collection(r.inspectionsCollection()).
		Where("TenantID", "==", string(tenantID))
	return r.listQuery(ctx, query, tenantID)
}

func (r *inspectionRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Inspection, error) {
	query := r.client.Collection(r.inspectionsCollection()).
		Where("TenantID", "==", string(tenantID)).
		Where("BuildingID", "==", string(buildingID))
	return r.listQuery(ctx, query, tenantID)
}

func (r *inspectionRepository) listQuery(ctx context.Context, query firestore.Query, tenantID types.TenantID) ([]*model.Inspection, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	inspections := make([]*model.Inspection, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate inspections", goerr.V("tenant_id", tenantID))
		}

		var inspection model.Inspection
		if err := docSnap.DataTo(&inspection); err != nil {
			return nil, goerr.Wrap(err, "failed to decode inspection", goerr.V("doc_id", docSnap.Ref.ID))
		}

		inspections = append(inspections, &inspection)
	}

	return inspections, nil
}

func (r *inspectionRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	return countByTemplate(ctx, r.client, r.inspectionsCollection(), tenantID, templateID)
}
