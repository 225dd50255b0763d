package interfaces

import (
	"context"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// ContactRepository defines data access for contacts
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Get(ctx context.Context, tenantID types.TenantID, id types.ContactID) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) (*model.Contact, error)
	Delete(ctx context.Context, tenantID types.TenantID, id types.ContactID) error
	List(ctx context.Context, tenantID types.TenantID) ([]*model.Contact, error)
}
