package render_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
)

func TestBuildControl_WidgetDispatch(t *testing.T) {
	tests := []struct {
		fieldType types.FieldType
		want      render.Widget
	}{
		{types.FieldTypeText, render.WidgetTextInput},
		{types.FieldTypeTextarea, render.WidgetTextarea},
		{types.FieldTypeNumber, render.WidgetNumberInput},
		{types.FieldTypeDate, render.WidgetDatePicker},
		{types.FieldTypeSelect, render.WidgetSelect},
		{types.FieldTypeMultiSelect, render.WidgetMultiSelect},
		{types.FieldTypeCheckbox, render.WidgetToggle},
		{types.FieldTypeURL, render.WidgetURLInput},
		{types.FieldTypeImage, render.WidgetFilePicker},
		{types.FieldTypeFile, render.WidgetFilePicker},
	}

	for _, tt := range tests {
		t.Run(tt.fieldType.String(), func(t *testing.T) {
			c := render.BuildControl(model.FieldSchema{Key: "f", Type: tt.fieldType}, nil)
			gt.Value(t, c.Widget).Equal(tt.want)
		})
	}
}

func TestBuildControl_WideRule(t *testing.T) {
	wide := map[types.FieldType]bool{
		types.FieldTypeTextarea:    true,
		types.FieldTypeMultiSelect: true,
		types.FieldTypeImage:       true,
		types.FieldTypeFile:        true,
	}

	for _, ft := range types.AllFieldTypes() {
		c := render.BuildControl(model.FieldSchema{Key: "f", Type: ft}, nil)
		d := render.BuildDisplay(model.FieldSchema{Key: "f", Type: ft}, nil)
		gt.Value(t, c.Wide).Equal(wide[ft])
		// form and view must agree so the two-column grid never clips
		gt.Value(t, d.Wide).Equal(c.Wide)
	}
}

func TestBuildControl_Number(t *testing.T) {
	minVal, maxVal := 0.0, 100.0
	field := model.FieldSchema{
		Key: "occupancy", Type: types.FieldTypeNumber, Min: &minVal, Max: &maxVal,
	}

	t.Run("bounds carried onto the control", func(t *testing.T) {
		c := render.BuildControl(field, float64(42))
		gt.Value(t, *c.Min).Equal(0.0)
		gt.Value(t, *c.Max).Equal(100.0)
		gt.Value(t, c.Value).Equal(any(float64(42)))
	})

	t.Run("unset number stays nil, never zero", func(t *testing.T) {
		c := render.BuildControl(field, nil)
		gt.Value(t, c.Value).Equal(nil)
	})

	t.Run("int value normalized to float64", func(t *testing.T) {
		c := render.BuildControl(field, 7)
		gt.Value(t, c.Value).Equal(any(float64(7)))
	})
}

func TestBuildControl_SelectDegradesWithoutOptions(t *testing.T) {
	c := render.BuildControl(model.FieldSchema{Key: "use", Type: types.FieldTypeSelect}, nil)
	// empty choice list, not nil and not a panic
	gt.Array(t, c.Options).Length(0)
}

func TestBuildControl_MultiSelectOrder(t *testing.T) {
	field := model.FieldSchema{
		Key: "certs", Type: types.FieldTypeMultiSelect,
		Options: []string{"A", "B", "C"},
	}

	c := render.BuildControl(field, []string{"B", "C"})
	gt.Value(t, c.Value).Equal(any([]string{"B", "C"}))
}

func TestBuildControl_FileAccept(t *testing.T) {
	field := model.FieldSchema{Key: "photo", Type: types.FieldTypeImage, Accept: "image/*"}
	c := render.BuildControl(field, nil)
	gt.Value(t, c.Accept).Equal("image/*")
	gt.Value(t, c.Widget).Equal(render.WidgetFilePicker)
}

func TestBuildControl_TextareaRows(t *testing.T) {
	field := model.FieldSchema{Key: "notes", Type: types.FieldTypeTextarea, Rows: 6}
	c := render.BuildControl(field, "line1\nline2")
	gt.Value(t, c.Rows).Equal(6)
	gt.Value(t, c.Value).Equal(any("line1\nline2"))
}
