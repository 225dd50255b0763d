package types

import "fmt"

// FieldType represents the type of a configurable template field.
// It is the dispatch tag for form rendering, display rendering and validation.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeImage       FieldType = "image"
	FieldTypeFile        FieldType = "file"
	FieldTypeURL         FieldType = "url"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextarea,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeSelect,
		FieldTypeMultiSelect,
		FieldTypeCheckbox,
		FieldTypeImage,
		FieldTypeFile,
		FieldTypeURL,
	}
}

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText,
		FieldTypeTextarea,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeSelect,
		FieldTypeMultiSelect,
		FieldTypeCheckbox,
		FieldTypeImage,
		FieldTypeFile,
		FieldTypeURL:
		return true
	default:
		return false
	}
}

// HasOptions reports whether the field type carries an option list
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeMultiSelect
}

// String returns the string representation of the field type
func (t FieldType) String() string {
	return string(t)
}

// ParseFieldType parses a string into a FieldType
func ParseFieldType(s string) (FieldType, error) {
	t := FieldType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid field type: %s", s)
	}
	return t, nil
}
