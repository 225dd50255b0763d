package render

import "github.com/tom-tochito/procomply/pkg/domain/model"

// BuildForm maps an ordered field list plus an entity's data map onto edit
// controls, one per field in list order. Data keys that no field describes
// are ignored; fields with no stored value render as empty controls.
func BuildForm(fields []model.FieldSchema, data map[string]any) []Control {
	controls := make([]Control, len(fields))
	for i, field := range fields {
		controls[i] = BuildControl(field, data[field.Key])
	}
	return controls
}

// BuildView is the read-only counterpart of BuildForm
func BuildView(fields []model.FieldSchema, data map[string]any) []Display {
	displays := make([]Display, len(fields))
	for i, field := range fields {
		displays[i] = BuildDisplay(field, data[field.Key])
	}
	return displays
}
