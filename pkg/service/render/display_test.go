package render_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
)

func TestBuildDisplay_NotProvidedFallback(t *testing.T) {
	// Every field type renders the placeholder for unset values, never a
	// blank string.
	unsetValues := []any{nil, "", []string{}, []any{}}

	for _, ft := range types.AllFieldTypes() {
		field := model.FieldSchema{Key: "f", Label: "F", Type: ft,
			Options: []string{"Residential", "Commercial"}}
		for _, value := range unsetValues {
			d := render.BuildDisplay(field, value)
			if d.Provided {
				t.Errorf("type %s value %#v: expected not provided", ft, value)
			}
			if d.Text != render.NotProvided {
				t.Errorf("type %s value %#v: expected placeholder, got %q", ft, value, d.Text)
			}
		}
	}
}

func TestBuildDisplay_SelectUndefined(t *testing.T) {
	field := model.FieldSchema{
		Key: "use", Type: types.FieldTypeSelect,
		Options: []string{"Residential", "Commercial"},
	}

	d := render.BuildDisplay(field, nil)
	gt.B(t, d.Provided).False()
	gt.Value(t, d.Text).Equal(render.NotProvided)
}

func TestBuildDisplay_Values(t *testing.T) {
	tests := []struct {
		name  string
		field model.FieldSchema
		value any
		want  render.Display
	}{
		{
			name:  "text",
			field: model.FieldSchema{Key: "name", Type: types.FieldTypeText},
			value: "12 High Street",
			want:  render.Display{Kind: render.DisplayText, Provided: true, Text: "12 High Street"},
		},
		{
			name:  "textarea preserves line breaks",
			field: model.FieldSchema{Key: "notes", Type: types.FieldTypeTextarea},
			value: "first\nsecond",
			want:  render.Display{Kind: render.DisplayMultiline, Provided: true, Text: "first\nsecond", Wide: true},
		},
		{
			name:  "number formatting",
			field: model.FieldSchema{Key: "area", Type: types.FieldTypeNumber},
			value: float64(1250.5),
			want:  render.Display{Kind: render.DisplayNumber, Provided: true, Text: "1250.5"},
		},
		{
			name:  "number integral value has no trailing zeros",
			field: model.FieldSchema{Key: "floors", Type: types.FieldTypeNumber},
			value: float64(3),
			want:  render.Display{Kind: render.DisplayNumber, Provided: true, Text: "3"},
		},
		{
			name:  "date localized",
			field: model.FieldSchema{Key: "survey", Type: types.FieldTypeDate},
			value: "2026-03-14",
			want:  render.Display{Kind: render.DisplayDate, Provided: true, Text: "14 Mar 2026"},
		},
		{
			name:  "select as tag",
			field: model.FieldSchema{Key: "use", Type: types.FieldTypeSelect, Options: []string{"Commercial"}},
			value: "Commercial",
			want:  render.Display{Kind: render.DisplayTag, Provided: true, Text: "Commercial"},
		},
		{
			name:  "checkbox yes",
			field: model.FieldSchema{Key: "listed", Type: types.FieldTypeCheckbox},
			value: true,
			want:  render.Display{Kind: render.DisplayBoolean, Provided: true, Text: "Yes"},
		},
		{
			name:  "checkbox no is provided, not placeholder",
			field: model.FieldSchema{Key: "listed", Type: types.FieldTypeCheckbox},
			value: false,
			want:  render.Display{Kind: render.DisplayBoolean, Provided: true, Text: "No"},
		},
		{
			name:  "url is a link",
			field: model.FieldSchema{Key: "site", Type: types.FieldTypeURL},
			value: "https://example.com",
			want: render.Display{Kind: render.DisplayLink, Provided: true,
				Text: "https://example.com", Href: "https://example.com"},
		},
		{
			name:  "file is a view link",
			field: model.FieldSchema{Key: "cert", Type: types.FieldTypeFile},
			value: "documents/acme/cert.pdf",
			want: render.Display{Kind: render.DisplayFile, Provided: true,
				Text: "View File", Href: "documents/acme/cert.pdf", Wide: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := render.BuildDisplay(tt.field, tt.value)
			gt.Value(t, d.Kind).Equal(tt.want.Kind)
			gt.Value(t, d.Provided).Equal(tt.want.Provided)
			gt.Value(t, d.Text).Equal(tt.want.Text)
			gt.Value(t, d.Href).Equal(tt.want.Href)
			gt.Value(t, d.Wide).Equal(tt.want.Wide)
		})
	}
}

func TestBuildDisplay_MultiSelectOrderPreserved(t *testing.T) {
	field := model.FieldSchema{
		Key: "certs", Type: types.FieldTypeMultiSelect,
		Options: []string{"A", "B", "C"},
	}

	d := render.BuildDisplay(field, []string{"B", "C"})
	gt.B(t, d.Provided).True()
	gt.Value(t, d.Items).Equal([]string{"B", "C"})
	gt.Value(t, d.Text).Equal("B, C")
}

func TestBuildDisplay_MultiSelectFromJSON(t *testing.T) {
	field := model.FieldSchema{
		Key: "certs", Type: types.FieldTypeMultiSelect,
		Options: []string{"A", "B"},
	}

	d := render.BuildDisplay(field, []any{"A", "B"})
	gt.Value(t, d.Items).Equal([]string{"A", "B"})
}

func TestBuildDisplay_WrongTypeFallsBackToPlaceholder(t *testing.T) {
	field := model.FieldSchema{Key: "name", Type: types.FieldTypeText}
	d := render.BuildDisplay(field, 42)
	gt.B(t, d.Provided).False()
	gt.Value(t, d.Text).Equal(render.NotProvided)
}
