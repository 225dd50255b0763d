package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type ContactUseCase struct {
	repo interfaces.Repository
}

func NewContactUseCase(repo interfaces.Repository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

func (uc *ContactUseCase) Create(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	if c.Name == "" {
		return nil, goerr.Wrap(model.ErrMissingRequired, "contact name is required")
	}

	created, err := uc.repo.Contact().Create(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create contact")
	}
	return created, nil
}

func (uc *ContactUseCase) Get(ctx context.Context, tenantID types.TenantID, id types.ContactID) (*model.Contact, error) {
	contact, err := uc.repo.Contact().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get contact", goerr.V("contact_id", id))
	}
	return contact, nil
}

func (uc *ContactUseCase) Update(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	if c.Name == "" {
		return nil, goerr.Wrap(model.ErrMissingRequired, "contact name is required")
	}

	updated, err := uc.repo.Contact().Update(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update contact", goerr.V("contact_id", c.ID))
	}
	return updated, nil
}

func (uc *ContactUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.ContactID) error {
	if err := uc.repo.Contact().Delete(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete contact", goerr.V("contact_id", id))
	}
	return nil
}

func (uc *ContactUseCase) List(ctx context.Context, tenantID types.TenantID) ([]*model.Contact, error) {
	contacts, err := uc.repo.Contact().List(ctx, tenantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list contacts")
	}
	return contacts, nil
}
