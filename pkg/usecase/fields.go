package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// customFields resolves the custom field list an entity's template
// contributes. TemplateID is a weak reference: an empty or dangling ID
// degrades to no custom fields rather than failing the operation.
func customFields(ctx context.Context, repo interfaces.Repository, tenantID types.TenantID, templateID types.TemplateID) ([]model.FieldSchema, error) {
	if templateID == "" {
		return nil, nil
	}

	tmpl, err := repo.Template().Get(ctx, tenantID, templateID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to resolve template", goerr.V(TemplateIDKey, templateID))
	}

	return tmpl.Fields, nil
}

// formValidator builds the validator covering an entity's built-in fields
// plus its template's custom fields. Built-ins win on key collision.
func formValidator(ctx context.Context, repo interfaces.Repository, tenantID types.TenantID, entity types.EntityType, templateID types.TemplateID) (*model.FormValidator, error) {
	custom, err := customFields(ctx, repo, tenantID, templateID)
	if err != nil {
		return nil, err
	}
	return model.NewFormValidator(model.BuiltinFieldsFor(entity), custom), nil
}
