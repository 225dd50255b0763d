package render

import (
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// Widget identifies the edit control a field renders as
type Widget string

const (
	WidgetTextInput   Widget = "text-input"
	WidgetTextarea    Widget = "textarea"
	WidgetNumberInput Widget = "number-input"
	WidgetDatePicker  Widget = "date-picker"
	WidgetSelect      Widget = "select"
	WidgetMultiSelect Widget = "multi-select"
	WidgetToggle      Widget = "toggle"
	WidgetURLInput    Widget = "url-input"
	WidgetFilePicker  Widget = "file-picker"
)

// Control is the structured descriptor of one editable form control. The
// consumer wires the control's Key into its change callback; submitting a
// file through a file-picker control only stages the selection — the
// upload itself belongs to the entity-save flow, not the form.
type Control struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Type        types.FieldType `json:"type"`
	Widget      Widget          `json:"widget"`
	Value       any             `json:"value,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	HelpText    string          `json:"helpText,omitempty"`
	Options     []string        `json:"options,omitempty"`
	Min         *float64        `json:"min,omitempty"`
	Max         *float64        `json:"max,omitempty"`
	Rows        int             `json:"rows,omitempty"`
	Accept      string          `json:"accept,omitempty"`
	Wide        bool            `json:"wide,omitempty"`
}

// BuildControl produces the edit-control descriptor for one field and its
// current value. Dispatch is exhaustive over the field type set; an
// invalid type falls back to a plain text input rather than failing the
// whole form.
func BuildControl(field model.FieldSchema, value any) Control {
	c := Control{
		Key:         field.Key,
		Label:       field.Label,
		Type:        field.Type,
		Required:    field.Required,
		Placeholder: field.Placeholder,
		HelpText:    field.HelpText,
		Wide:        wideField(field.Type),
	}

	switch field.Type {
	case types.FieldTypeText:
		c.Widget = WidgetTextInput
		c.Value = stringOrNil(value)

	case types.FieldTypeTextarea:
		c.Widget = WidgetTextarea
		c.Value = stringOrNil(value)
		c.Rows = field.Rows

	case types.FieldTypeNumber:
		c.Widget = WidgetNumberInput
		c.Min = field.Min
		c.Max = field.Max
		if n, ok := asNumber(value); ok {
			c.Value = n
		}

	case types.FieldTypeDate:
		c.Widget = WidgetDatePicker
		c.Value = stringOrNil(value)

	case types.FieldTypeSelect:
		c.Widget = WidgetSelect
		c.Options = optionsOf(field)
		c.Value = stringOrNil(value)

	case types.FieldTypeMultiSelect:
		c.Widget = WidgetMultiSelect
		c.Options = optionsOf(field)
		if selected := asStrings(value); len(selected) > 0 {
			c.Value = selected
		}

	case types.FieldTypeCheckbox:
		c.Widget = WidgetToggle
		if b, ok := value.(bool); ok {
			c.Value = b
		}

	case types.FieldTypeURL:
		c.Widget = WidgetURLInput
		c.Value = stringOrNil(value)

	case types.FieldTypeImage, types.FieldTypeFile:
		c.Widget = WidgetFilePicker
		c.Accept = field.Accept
		c.Value = stringOrNil(value)

	default:
		c.Widget = WidgetTextInput
		c.Value = stringOrNil(value)
	}

	return c
}

// stringOrNil keeps unset string values as nil so an empty form control is
// distinguishable from a stored empty string
func stringOrNil(value any) any {
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return nil
}

// optionsOf returns the field's option list, degrading malformed (missing)
// options on select fields to an empty list so the form stays renderable
func optionsOf(field model.FieldSchema) []string {
	if len(field.Options) == 0 {
		return []string{}
	}
	out := make([]string, len(field.Options))
	copy(out, field.Options)
	return out
}
