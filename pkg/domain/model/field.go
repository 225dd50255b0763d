package model

import (
	"regexp"
	"strings"

	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// FieldSchema describes one configurable field of a template.
// Key is the stable identifier the owning entity's data map is keyed by;
// it is derived from Label at creation time but may diverge afterwards
// if the label is edited without re-deriving.
type FieldSchema struct {
	Key         string
	Label       string
	Type        types.FieldType
	Required    bool
	Placeholder string
	HelpText    string

	// Type-specific attributes. Options is only meaningful for select and
	// multiselect, Min/Max for number, Rows for textarea, Accept for
	// image and file.
	Options []string
	Min     *float64
	Max     *float64
	Rows    int
	Accept  string
}

var nonKeyRunPattern = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveKey derives a field key from a human-readable label: lowercase,
// every run of characters outside [a-z0-9] collapsed to a single underscore,
// leading and trailing underscores trimmed. Total; returns "" for labels
// without any alphanumeric characters.
func DeriveKey(label string) string {
	key := strings.ToLower(label)
	key = nonKeyRunPattern.ReplaceAllString(key, "_")
	return strings.Trim(key, "_")
}

// NewFieldSchema creates a FieldSchema with its key derived from the label
func NewFieldSchema(label string, fieldType types.FieldType) FieldSchema {
	return FieldSchema{
		Key:   DeriveKey(label),
		Label: label,
		Type:  fieldType,
	}
}

// BuiltinFieldsFor returns the fixed, non-editable fields every entity of
// the given classification always has, regardless of any custom template.
// The returned slice is a fresh copy on every call.
func BuiltinFieldsFor(entity types.EntityType) []FieldSchema {
	var fields []FieldSchema
	switch entity {
	case types.EntityTypeBuilding:
		fields = []FieldSchema{
			{Key: "name", Label: "Name", Type: types.FieldTypeText, Required: true},
			{Key: "image", Label: "Image", Type: types.FieldTypeImage, Accept: "image/*"},
		}
	case types.EntityTypeTask:
		fields = []FieldSchema{
			{Key: "title", Label: "Title", Type: types.FieldTypeText, Required: true},
			{Key: "status", Label: "Status", Type: types.FieldTypeSelect, Required: true,
				Options: taskStatusOptions()},
			{Key: "priority", Label: "Priority", Type: types.FieldTypeSelect, Required: true,
				Options: taskPriorityOptions()},
			{Key: "due_date", Label: "Due Date", Type: types.FieldTypeDate},
		}
	case types.EntityTypeDocument:
		fields = []FieldSchema{
			{Key: "title", Label: "Title", Type: types.FieldTypeText, Required: true},
			{Key: "file", Label: "File", Type: types.FieldTypeFile, Required: true},
			{Key: "expires_at", Label: "Expires At", Type: types.FieldTypeDate},
		}
	case types.EntityTypeInspection:
		fields = []FieldSchema{
			{Key: "title", Label: "Title", Type: types.FieldTypeText, Required: true},
			{Key: "status", Label: "Status", Type: types.FieldTypeSelect, Required: true,
				Options: inspectionStatusOptions()},
			{Key: "scheduled_for", Label: "Scheduled For", Type: types.FieldTypeDate, Required: true},
		}
	case types.EntityTypeGeneral:
		// general templates have no built-in fields
	}

	out := make([]FieldSchema, len(fields))
	copy(out, fields)
	return out
}

func taskStatusOptions() []string {
	statuses := types.AllTaskStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func taskPriorityOptions() []string {
	return []string{
		types.TaskPriorityLow.String(),
		types.TaskPriorityMedium.String(),
		types.TaskPriorityHigh.String(),
		types.TaskPriorityUrgent.String(),
	}
}

func inspectionStatusOptions() []string {
	statuses := types.AllInspectionStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
