package render

import (
	"strings"
	"time"

	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// DisplayKind identifies how a read-only value is presented
type DisplayKind string

const (
	DisplayText      DisplayKind = "text"
	DisplayMultiline DisplayKind = "multiline"
	DisplayNumber    DisplayKind = "number"
	DisplayDate      DisplayKind = "date"
	DisplayTag       DisplayKind = "tag"
	DisplayTags      DisplayKind = "tags"
	DisplayBoolean   DisplayKind = "boolean"
	DisplayLink      DisplayKind = "link"
	DisplayImage     DisplayKind = "image"
	DisplayFile      DisplayKind = "file"
)

// Display is the structured descriptor of one read-only field rendering.
// Text always carries something printable: the formatted value when
// Provided, the NotProvided placeholder otherwise.
type Display struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Type     types.FieldType `json:"type"`
	Kind     DisplayKind     `json:"kind"`
	Provided bool            `json:"provided"`
	Text     string          `json:"text"`
	Items    []string        `json:"items,omitempty"`
	Href     string          `json:"href,omitempty"`
	Wide     bool            `json:"wide,omitempty"`
}

// BuildDisplay produces the read-only descriptor for one field and its
// stored value. An unset value (nil, empty string, empty list) always
// yields the NotProvided placeholder, never blank output.
func BuildDisplay(field model.FieldSchema, value any) Display {
	d := Display{
		Key:   field.Key,
		Label: field.Label,
		Type:  field.Type,
		Kind:  displayKind(field.Type),
		Wide:  wideField(field.Type),
	}

	if isEmpty(value) {
		d.Text = NotProvided
		return d
	}

	switch field.Type {
	case types.FieldTypeText, types.FieldTypeTextarea:
		s, ok := value.(string)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Text = s // multiline keeps its line breaks verbatim

	case types.FieldTypeNumber:
		n, ok := asNumber(value)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Text = formatNumber(n)

	case types.FieldTypeDate:
		s, ok := value.(string)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		if parsed, err := time.Parse(model.ISODate, s); err == nil {
			d.Text = parsed.Format("2 Jan 2006")
		} else {
			// Stored value predates the date format contract; show it raw
			// instead of hiding it behind the placeholder.
			d.Text = s
		}

	case types.FieldTypeSelect:
		s, ok := value.(string)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Text = s

	case types.FieldTypeMultiSelect:
		items := asStrings(value)
		if len(items) == 0 {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Items = items
		d.Text = strings.Join(items, ", ")

	case types.FieldTypeCheckbox:
		b, ok := value.(bool)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		if b {
			d.Text = "Yes"
		} else {
			d.Text = "No"
		}

	case types.FieldTypeURL:
		s, ok := value.(string)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Text = s
		d.Href = s

	case types.FieldTypeImage:
		ref, ok := value.(string)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Text = field.Label
		d.Href = ref

	case types.FieldTypeFile:
		ref, ok := value.(string)
		if !ok {
			d.Text = NotProvided
			return d
		}
		d.Provided = true
		d.Text = "View File"
		d.Href = ref

	default:
		d.Text = NotProvided
	}

	return d
}

func displayKind(t types.FieldType) DisplayKind {
	switch t {
	case types.FieldTypeTextarea:
		return DisplayMultiline
	case types.FieldTypeNumber:
		return DisplayNumber
	case types.FieldTypeDate:
		return DisplayDate
	case types.FieldTypeSelect:
		return DisplayTag
	case types.FieldTypeMultiSelect:
		return DisplayTags
	case types.FieldTypeCheckbox:
		return DisplayBoolean
	case types.FieldTypeURL:
		return DisplayLink
	case types.FieldTypeImage:
		return DisplayImage
	case types.FieldTypeFile:
		return DisplayFile
	default:
		return DisplayText
	}
}
