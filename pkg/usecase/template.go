package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

type TemplateUseCase struct {
	repo interfaces.Repository
}

func NewTemplateUseCase(repo interfaces.Repository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// prepareFields derives missing keys from labels and removes duplicate
// keys, first occurrence winning. Shared by Create and Update so both
// paths persist the same shape.
func prepareFields(fields []model.FieldSchema) []model.FieldSchema {
	prepared := make([]model.FieldSchema, len(fields))
	copy(prepared, fields)
	for i := range prepared {
		if prepared[i].Key == "" {
			prepared[i].Key = model.DeriveKey(prepared[i].Label)
		}
	}
	return model.DedupeFields(prepared)
}

func (uc *TemplateUseCase) Create(ctx context.Context, tmpl *model.Template) (*model.Template, error) {
	prepared := *tmpl
	prepared.Fields = prepareFields(tmpl.Fields)

	if err := prepared.Validate(); err != nil {
		return nil, goerr.Wrap(err, "template validation failed", goerr.V("name", tmpl.Name))
	}

	created, err := uc.repo.Template().Create(ctx, &prepared)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create template")
	}

	return created, nil
}

func (uc *TemplateUseCase) Get(ctx context.Context, tenantID types.TenantID, id types.TemplateID) (*model.Template, error) {
	tmpl, err := uc.repo.Template().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get template", goerr.V(TemplateIDKey, id))
	}
	return tmpl, nil
}

// Update replaces the template wholesale, field list included. There is
// no per-field merge: the submitted list is the new list.
func (uc *TemplateUseCase) Update(ctx context.Context, tmpl *model.Template) (*model.Template, error) {
	prepared := *tmpl
	prepared.Fields = prepareFields(tmpl.Fields)

	if err := prepared.Validate(); err != nil {
		return nil, goerr.Wrap(err, "template validation failed", goerr.V(TemplateIDKey, tmpl.ID))
	}

	updated, err := uc.repo.Template().Update(ctx, &prepared)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update template", goerr.V(TemplateIDKey, tmpl.ID))
	}

	return updated, nil
}

// Delete removes a template. The repository refuses when any entity still
// references it; the refusal is passed through so callers can tell the
// user the template may be in use.
func (uc *TemplateUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.TemplateID) error {
	if err := uc.repo.Template().Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, interfaces.ErrTemplateInUse) {
			return goerr.Wrap(err, "template may be in use", goerr.V(TemplateIDKey, id))
		}
		return goerr.Wrap(err, "failed to delete template", goerr.V(TemplateIDKey, id))
	}
	return nil
}

func (uc *TemplateUseCase) List(ctx context.Context, tenantID types.TenantID, entity types.EntityType) ([]*model.Template, error) {
	if entity != "" && !entity.IsValid() {
		return nil, goerr.Wrap(model.ErrEntityTypeInvalid, "unknown entity classification", goerr.V("entity", entity))
	}

	templates, err := uc.repo.Template().List(ctx, tenantID, entity)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list templates")
	}
	return templates, nil
}
