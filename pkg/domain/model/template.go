package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewTemplateID generates a new UUID v4 TemplateID
func NewTemplateID() types.TemplateID {
	return types.TemplateID(uuid.New().String())
}

// Template is a named, ordered collection of field schemas owned by one
// tenant and targeting one entity classification. Entities reference a
// template by ID only; changing a template's fields never migrates data
// already stored on entities.
type Template struct {
	ID        types.TemplateID
	TenantID  types.TenantID
	Name      string
	Entity    types.EntityType
	Fields    []FieldSchema
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validation errors for templates
var (
	ErrTemplateNameRequired = goerr.New("template name is required")
	ErrTemplateFieldsEmpty  = goerr.New("template requires at least one field")
	ErrFieldKeyEmpty        = goerr.New("field key is empty")
	ErrFieldTypeInvalid     = goerr.New("invalid field type")
	ErrFieldOptionsRequired = goerr.New("select and multiselect fields require options")
	ErrFieldBoundsInverted  = goerr.New("field min must not exceed max")
	ErrEntityTypeInvalid    = goerr.New("invalid entity type")
)

// DedupeFields removes fields whose key already appeared earlier in the
// list. The first occurrence of each key wins; later duplicates are
// discarded. Order of surviving fields is preserved.
func DedupeFields(fields []FieldSchema) []FieldSchema {
	seen := make(map[string]bool, len(fields))
	out := make([]FieldSchema, 0, len(fields))
	for _, f := range fields {
		if seen[f.Key] {
			continue
		}
		seen[f.Key] = true
		out = append(out, f)
	}
	return out
}

// Validate checks template integrity before persistence. It assumes the
// field list has already been deduplicated.
func (t *Template) Validate() error {
	if t.Name == "" {
		return goerr.Wrap(ErrTemplateNameRequired, "invalid template")
	}
	if !t.Entity.IsValid() {
		return goerr.Wrap(ErrEntityTypeInvalid, "invalid template",
			goerr.V("entity", t.Entity))
	}
	if len(t.Fields) == 0 {
		return goerr.Wrap(ErrTemplateFieldsEmpty, "invalid template",
			goerr.V("name", t.Name))
	}

	for i, f := range t.Fields {
		if f.Key == "" {
			return goerr.Wrap(ErrFieldKeyEmpty, "invalid template field",
				goerr.V("index", i), goerr.V("label", f.Label))
		}
		if !f.Type.IsValid() {
			return goerr.Wrap(ErrFieldTypeInvalid, "invalid template field",
				goerr.V("key", f.Key), goerr.V("type", f.Type))
		}
		if f.Type.HasOptions() && len(f.Options) == 0 {
			return goerr.Wrap(ErrFieldOptionsRequired, "invalid template field",
				goerr.V("key", f.Key), goerr.V("type", f.Type))
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			return goerr.Wrap(ErrFieldBoundsInverted, "invalid template field",
				goerr.V("key", f.Key), goerr.V("min", *f.Min), goerr.V("max", *f.Max))
		}
	}

	return nil
}

// FieldByKey returns the field schema with the given key, if present
func (t *Template) FieldByKey(key string) (FieldSchema, bool) {
	for _, f := range t.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSchema{}, false
}
