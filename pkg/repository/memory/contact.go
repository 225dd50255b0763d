package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type contactKey struct {
	TenantID types.TenantID
	ID       types.ContactID
}

type contactRepository struct {
	mu       sync.RWMutex
	contacts map[contactKey]*model.Contact
	order    []contactKey
}

func newContactRepository() *contactRepository {
	return &contactRepository{
		contacts: make(map[contactKey]*model.Contact),
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *contact
	if saved.ID == "" {
		saved.ID = model.NewContactID()
	}
	saved.CreatedAt = now()
	saved.UpdatedAt = saved.CreatedAt

	key := contactKey{TenantID: saved.TenantID, ID: saved.ID}
	if _, exists := r.contacts[key]; !exists {
		r.order = append(r.order, key)
	}
	r.contacts[key] = &saved

	out := saved
	return &out, nil
}

func (r *contactRepository) Get(ctx context.Context, tenantID types.TenantID, id types.ContactID) (*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contact, ok := r.contacts[contactKey{TenantID: tenantID, ID: id}]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found",
			goerr.V("tenant_id", tenantID), goerr.V("contact_id", id))
	}
	out := *contact
	return &out, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) (*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := contactKey{TenantID: contact.TenantID, ID: contact.ID}
	existing, ok := r.contacts[key]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "contact not found",
			goerr.V("tenant_id", contact.TenantID), goerr.V("contact_id", contact.ID))
	}

	saved := *contact
	saved.CreatedAt = existing.CreatedAt
	saved.UpdatedAt = now()
	r.contacts[key] = &saved

	out := saved
	return &out, nil
}

func (r *contactRepository) Delete(ctx context.Context, tenantID types.TenantID, id types.ContactID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := contactKey{TenantID: tenantID, ID: id}
	if _, ok := r.contacts[key]; !ok {
		return goerr.Wrap(interfaces.ErrNotFound, "contact not found",
			goerr.V("tenant_id", tenantID), goerr.V("contact_id", id))
	}
	delete(r.contacts, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *contactRepository) List(ctx context.Context, tenantID types.TenantID) ([]*model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*model.Contact, 0)
	for _, key := range r.order {
		if key.TenantID == tenantID {
			out := *r.contacts[key]
			contacts = append(contacts, &out)
		}
	}
	return contacts, nil
}
