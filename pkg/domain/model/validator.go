package model

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// ISODate is the wire format for date field values, consistent across
// create, edit and display.
const ISODate = "2006-01-02"

// FormValidator validates an entity's data map against a field list at the
// form-submission boundary. Required-ness is enforced here only, never
// retroactively on already-stored data. Keys in the data map that no field
// describes are skipped: they may be orphaned values left behind by a field
// key rename, which this system deliberately does not migrate.
type FormValidator struct {
	fields []FieldSchema
}

// NewFormValidator creates a validator over the combined built-in and
// template field lists. Built-in fields win on key collision.
func NewFormValidator(builtin, custom []FieldSchema) *FormValidator {
	return &FormValidator{
		fields: DedupeFields(append(append([]FieldSchema{}, builtin...), custom...)),
	}
}

// Fields returns the combined field list the validator checks against
func (v *FormValidator) Fields() []FieldSchema {
	return v.fields
}

// Validate checks the data map against the field list. A nil value, empty
// string or empty slice counts as unset: allowed unless the field is
// required, and never coerced to a zero value.
func (v *FormValidator) Validate(data map[string]any) error {
	for _, field := range v.fields {
		value, ok := data[field.Key]
		if !ok || isUnset(value) {
			if field.Required {
				return goerr.Wrap(ErrMissingRequired, "required field not provided",
					goerr.V(FieldKeyKey, field.Key))
			}
			continue
		}

		if err := v.validateValue(field, value); err != nil {
			return goerr.Wrap(err, "field validation failed",
				goerr.V(FieldKeyKey, field.Key),
				goerr.V(FieldTypeKey, field.Type))
		}
	}

	return nil
}

func isUnset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

func (v *FormValidator) validateValue(field FieldSchema, value any) error {
	switch field.Type {
	case types.FieldTypeText, types.FieldTypeTextarea:
		return requireString(field, value)
	case types.FieldTypeNumber:
		return v.validateNumber(field, value)
	case types.FieldTypeDate:
		return v.validateDate(field, value)
	case types.FieldTypeSelect:
		return v.validateSelect(field, value)
	case types.FieldTypeMultiSelect:
		return v.validateMultiSelect(field, value)
	case types.FieldTypeCheckbox:
		return v.validateCheckbox(field, value)
	case types.FieldTypeURL:
		return v.validateURL(field, value)
	case types.FieldTypeImage, types.FieldTypeFile:
		// Stored value is an object storage reference; the upload itself is
		// the storage collaborator's concern.
		return requireString(field, value)
	default:
		return goerr.Wrap(ErrInvalidFieldValue, "unsupported field type",
			goerr.V(FieldTypeKey, field.Type))
	}
}

func requireString(field FieldSchema, value any) error {
	if _, ok := value.(string); !ok {
		return goerr.Wrap(ErrInvalidFieldValue, "value must be string",
			goerr.V(ExpectedTypeKey, field.Type),
			goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
	}
	return nil
}

func (v *FormValidator) validateNumber(field FieldSchema, value any) error {
	num, ok := asFloat(value)
	if !ok {
		return goerr.Wrap(ErrInvalidFieldValue, "value must be number",
			goerr.V(ExpectedTypeKey, types.FieldTypeNumber),
			goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
	}

	if field.Min != nil && num < *field.Min {
		return goerr.Wrap(ErrValueOutOfRange, "value below minimum",
			goerr.V(ValueKey, num), goerr.V("min", *field.Min))
	}
	if field.Max != nil && num > *field.Max {
		return goerr.Wrap(ErrValueOutOfRange, "value above maximum",
			goerr.V(ValueKey, num), goerr.V("max", *field.Max))
	}

	return nil
}

func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func (v *FormValidator) validateDate(field FieldSchema, value any) error {
	s, ok := value.(string)
	if !ok {
		return goerr.Wrap(ErrInvalidFieldValue, "value must be ISO date string",
			goerr.V(ExpectedTypeKey, types.FieldTypeDate),
			goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
	}
	if _, err := time.Parse(ISODate, s); err != nil {
		return goerr.Wrap(ErrInvalidDate, "cannot parse date",
			goerr.V(ValueKey, s))
	}
	return nil
}

func (v *FormValidator) validateSelect(field FieldSchema, value any) error {
	s, ok := value.(string)
	if !ok {
		return goerr.Wrap(ErrInvalidFieldValue, "value must be string (option)",
			goerr.V(ExpectedTypeKey, types.FieldTypeSelect),
			goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
	}

	for _, opt := range field.Options {
		if opt == s {
			return nil
		}
	}
	return goerr.Wrap(ErrUnknownOption, "option not found in field schema",
		goerr.V(ValueKey, s))
}

func (v *FormValidator) validateMultiSelect(field FieldSchema, value any) error {
	selected, ok := value.([]string)
	if !ok {
		// JSON decoding yields []any; convert element-wise
		values, isAny := value.([]any)
		if !isAny {
			return goerr.Wrap(ErrInvalidFieldValue, "value must be array of strings",
				goerr.V(ExpectedTypeKey, types.FieldTypeMultiSelect),
				goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
		}
		selected = make([]string, len(values))
		for i, val := range values {
			s, isStr := val.(string)
			if !isStr {
				return goerr.Wrap(ErrInvalidFieldValue, "multiselect value must be array of strings",
					goerr.V(ExpectedTypeKey, types.FieldTypeMultiSelect),
					goerr.V(ActualTypeKey, fmt.Sprintf("%T", val)))
			}
			selected[i] = s
		}
	}

	valid := make(map[string]bool, len(field.Options))
	for _, opt := range field.Options {
		valid[opt] = true
	}
	for _, s := range selected {
		if !valid[s] {
			return goerr.Wrap(ErrUnknownOption, "option not found in field schema",
				goerr.V(ValueKey, s))
		}
	}

	return nil
}

func (v *FormValidator) validateCheckbox(field FieldSchema, value any) error {
	if _, ok := value.(bool); !ok {
		return goerr.Wrap(ErrInvalidFieldValue, "value must be boolean",
			goerr.V(ExpectedTypeKey, types.FieldTypeCheckbox),
			goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
	}
	return nil
}

func (v *FormValidator) validateURL(field FieldSchema, value any) error {
	s, ok := value.(string)
	if !ok {
		return goerr.Wrap(ErrInvalidFieldValue, "value must be string",
			goerr.V(ExpectedTypeKey, types.FieldTypeURL),
			goerr.V(ActualTypeKey, fmt.Sprintf("%T", value)))
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.Wrap(ErrInvalidURL, "cannot parse URL",
			goerr.V(ValueKey, s))
	}

	return nil
}
