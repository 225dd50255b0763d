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

type buildingRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newBuildingRepository(client *firestore.Client) *buildingRepository {
	return &buildingRepository{client: client}
}

func (r *buildingRepository) buildingsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_buildings"
	}
	return "buildings"
}

func (r *buildingRepository) Create(ctx context.Context, building *model.Building) (*model.Building, error) {
	now := time.Now().UTC()
	created := *building
	if created.ID == "" {
		created.ID = model.NewBuildingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.buildingsCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create building",
			goerr.V("tenant_id", created.TenantID), goerr.V("building_id", created.ID))
	}

	return &created, nil
}

func (r *buildingRepository) Get(ctx context.Context, tenantID types.TenantID, id types.BuildingID) (*model.Building, error) {
	docSnap, err := r.client.Collection(r.buildingsCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "building not found",
				goerr.V("tenant_id", tenantID), goerr.V("building_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get building", goerr.V("building_id", id))
	}

	var building model.Building
	if err := docSnap.DataTo(&building); err != nil {
		return nil, goerr.Wrap(err, "failed to decode building", goerr.V("building_id", id))
	}
	if building.TenantID != tenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "building not found",
			goerr.V("tenant_id", tenantID), goerr.V("building_id", id))
	}

	return &building, nil
}

func (r *buildingRepository) Update(ctx context.Context, building *model.Building) (*model.Building, error) {
	existing, err := r.Get(ctx, building.TenantID, building.ID)
	if err != nil {
		return nil, err
	}

	updated := *building
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = r.client.Collection(r.buildingsCollection()).Doc(string(updated.ID)).Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update building",
			goerr.V("tenant_id", updated.TenantID), goerr.V("building_id", updated.ID))
	}

	return &updated, nil
}

func (r *buildingRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.BuildingID) error {
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return err
	}

	_, err := r.client.Collection(r.buildingsCollection()).Doc(string(id)).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete building",
			goerr.V("tenant_id", tenantID), goerr.V("building_id", id))
	}

	return nil
}

func (r *buildingRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Building, error) {
	iter := r.client.Collection(r.buildingsCollection()).
		Where("TenantID", "==", string(tenantID)).
		Documents(ctx)
	defer iter.Stop()

	buildings := make([]*model.Building, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate buildings", goerr.V("tenant_id", tenantID))
		}

		var building model.Building
		if err := docSnap.DataTo(&building); err != nil {
			return nil, goerr.Wrap(err, "failed to decode building", goerr.V("doc_id", docSnap.Ref.ID))
		}

		buildings = append(buildings, &building)
	}

	return buildings, nil
}

func (r *buildingRepository) CountByTemplate(ctx context.Context, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	return countByTemplate(ctx, r.client, r.buildingsCollection(), tenantID, templateID)
}
