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

type contactRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newContactRepository(client *firestore.Client) *contactRepository {
	return &contactRepository{client: client}
}

func (r *contactRepository) contactsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_contacts"
	}
	return "contacts"
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	now := time.Now().UTC()
	created := *contact
	if created.ID == "" {
		created.ID = model.NewContactID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := r.client.Collection(r.contactsCollection()).Doc(string(created.ID)).Set(ctx, &created)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create contact",
			goerr.V("tenant_id", created.TenantID), goerr.V("contact_id", created.ID))
	}

	return &created, nil
}

func (r *contactRepository) Get(ctx context.Context, tenantID types.TenantID, id types.ContactID) (*model.Contact, error) {
	docSnap, err := r.client.Collection(r.contactsCollection()).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found",
				goerr.V("tenant_id", tenantID), goerr.V("contact_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get contact", goerr.V("contact_id", id))
	}

	var contact model.Contact
	if err := docSnap.DataTo(&contact); err != nil {
		return nil, goerr.Wrap(err, "failed to decode contact", goerr.V("contact_id", id))
	}
	if contact.TenantID != tenantID {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found",
			goerr.V("tenant_id", tenantID), goerr.V("contact_id", id))
	}

	return &contact, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	existing, err := r.Get(ctx, contact.TenantID, contact.ID)
	if err != nil {
		return nil, err
	}

	updated := *contact
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	_, err = r.client.Collection(r.contactsCollection()).Doc(string(updated.ID)).Set(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update contact",
			goerr.V("tenant_id", updated.TenantID), goerr.V("contact_id", updated.ID))
	}

	return &updated, nil
}

func (r *contactRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.ContactID) error {
	if _, err := r.Get(ctx, tenantID, id); err != nil {
		return err
	}

	_, err := r.client.Collection(r.contactsCollection()).Doc(string(id)).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete contact",
			goerr.V("tenant_id", tenantID), goerr.V("contact_id", id))
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Contact, error) {
	iter := r.client.Collection(r.contactsCollection()).
		Where("TenantID", "==", string(tenantID)).
		Documents(ctx)
	defer iter.Stop()

	contacts := make([]*model.Contact, 0)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate contacts", goerr.V("tenant_id", tenantID))
		}

		var contact model.Contact
		if err := docSnap.DataTo(&contact); err != nil {
			return nil, goerr.Wrap(err, "failed to decode contact", goerr.V("doc_id", docSnap.Ref.ID))
		}

		contacts = append(contacts, &contact)
	}

	return contacts, nil
}
