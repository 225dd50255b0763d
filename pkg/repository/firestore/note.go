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

type noteRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNoteRepository(client *firestore.Client) *noteRepository {
	return &noteRepository{client: client}
}

func (r *noteRepository) notesCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_notes"
	}
	return "notes"
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	now := time.Now().UTC()
	created := *note
	if created.ID == "" {
		created.ID = model.NewNoteID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.notesCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create note",
			goerr.V("tenant_id", created.TenantID), goerr.V("note_id", created.ID))
	}

	return &created, nil
}

func (r *noteRepository) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	docRef := r.client.Collection(r.notesCollection()).Doc(string(note.ID))

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "note not found",
				goerr.V("tenant_id", note.TenantID), goerr.V("note_id", note.ID))
		}
		return nil, goerr.Wrap(err, "failed to check note existence", goerr.V("note_id", note.ID))
	}

	var existing model.Note
	if err := docSnap.DataTo(&existing); err != nil {
		return nil, goerr.Wrap(err, "failed to decode note", goerr.V("note_id", note.ID))
	}
	if existing.TenantID != note.TenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "note not found",
			goerr.V("tenant_id", note.TenantID), goerr.V("note_id", note.ID))
	}

	updated := *note
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = docRef.Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update note",
			goerr.V("tenant_id", updated.TenantID), goerr.V("note_id", updated.ID))
	}

	return &updated, nil
}

func (r *noteRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.NoteID) error {
	docRef := r.client.Collection(r.notesCollection()).Doc(string(id))

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "note not found",
				goerr.V("tenant_id", tenantID), goerr.V("note_id", id))
		}
		return goerr.Wrap(err, "failed to check note existence", goerr.V("note_id", id))
	}

	var existing model.Note
	if err := docSnap.DataTo(&existing); err != nil {
		return goerr.Wrap(err, "failed to decode note", goerr.V("note_id", id))
	}
	if existing.TenantID != tenantID {
		return goerr.Wrap(interfaces.ErrNotFound, "note not found",
			goerr.V("tenant_id", tenantID), goerr.V("note_id", id))
	}

	_, err = docRef.Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete note",
			goerr.V("tenant_id", tenantID), goerr.V("note_id", id))
	}

	return nil
}

func (r *noteRepository) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Note, error) {
	iter := r.client.Collection(r.notesCollection()).
		Where("TenantID", "==", string(tenantID)).
		Where("BuildingID", "==", string(buildingID)).
		Documents(ctx)
	defer iter.Stop()

	notes := make([]*model.Note, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notes", goerr.V("tenant_id", tenantID))
		}

		var note model.Note
		if err := docSnap.DataTo(&note); err != nil {
			return nil, goerr.Wrap(err, "failed to decode note", goerr.V("doc_id", docSnap.Ref.ID))
		}

		notes = append(notes, &note)
	}

	return notes, nil
}

func (r *noteRepository) DeleteByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) error {
	iter := r.client.Collection(r.notesCollection()).
		Where("TenantID", "==", string(tenantID)).
		Where("BuildingID", "==", string(buildingID)).
		Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate notes",
				goerr.V("tenant_id", tenantID), goerr.V("building_id", buildingID))
		}

		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete note", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}

	return nil
}
