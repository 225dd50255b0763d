package render_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
)

func formFields() []model.FieldSchema {
	minVal := 0.0
	return []model.FieldSchema{
		{Key: "name", Label: "Name", Type: types.FieldTypeText, Required: true},
		{Key: "total_area", Label: "Total Area", Type: types.FieldTypeNumber, Min: &minVal},
		{Key: "certs", Label: "Certifications", Type: types.FieldTypeMultiSelect,
			Options: []string{"EPC", "CP12"}},
		{Key: "survey_date", Label: "Survey Date", Type: types.FieldTypeDate},
	}
}

func TestBuildForm(t *testing.T) {
	data := map[string]any{
		"name":       "12 High Street",
		"total_area": float64(420),
		"certs":      []string{"CP12"},
		// survey_date unset
		"orphaned": "ignored",
	}

	controls := render.BuildForm(formFields(), data)
	gt.Array(t, controls).Length(4)

	gt.Value(t, controls[0].Key).Equal("name")
	gt.Value(t, controls[0].Value).Equal(any("12 High Street"))
	gt.Value(t, controls[1].Value).Equal(any(float64(420)))
	gt.Value(t, controls[2].Value).Equal(any([]string{"CP12"}))
	gt.Value(t, controls[3].Value).Equal(nil)
}

func TestFormViewRoundTrip(t *testing.T) {
	// A data map assembled from the edit controls' values must display
	// every non-empty value and placeholder every empty one, without
	// panicking anywhere.
	fields := formFields()
	data := map[string]any{
		"name":  "Riverside House",
		"certs": []string{"EPC", "CP12"},
	}

	controls := render.BuildForm(fields, data)
	roundTripped := make(map[string]any, len(controls))
	for _, c := range controls {
		roundTripped[c.Key] = c.Value
	}

	displays := render.BuildView(fields, roundTripped)
	gt.Array(t, displays).Length(len(fields))

	byKey := make(map[string]render.Display)
	for _, d := range displays {
		byKey[d.Key] = d
	}

	gt.B(t, byKey["name"].Provided).True()
	gt.Value(t, byKey["name"].Text).Equal("Riverside House")
	gt.Value(t, byKey["certs"].Items).Equal([]string{"EPC", "CP12"})

	// unset fields display the placeholder, never blank
	gt.B(t, byKey["total_area"].Provided).False()
	gt.Value(t, byKey["total_area"].Text).Equal(render.NotProvided)
	gt.Value(t, byKey["survey_date"].Text).Equal(render.NotProvided)
}

func TestBuildView_OrderFollowsFieldList(t *testing.T) {
	displays := render.BuildView(formFields(), nil)
	keys := make([]string, len(displays))
	for i, d := range displays {
		keys[i] = d.Key
	}
	gt.Value(t, keys).Equal([]string{"name", "total_area", "certs", "survey_date"})
}
