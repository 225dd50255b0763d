package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

func TestDedupeFields(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		minVal := 0.0
		fields := []model.FieldSchema{
			{Key: "total_area", Label: "Total Area", Type: types.FieldTypeNumber, Min: &minVal},
			{Key: "total_area", Label: "Total Area", Type: types.FieldTypeText},
			{Key: "city", Label: "City", Type: types.FieldTypeText},
		}

		out := model.DedupeFields(fields)
		gt.Array(t, out).Length(2)
		gt.Value(t, out[0].Key).Equal("total_area")
		gt.Value(t, out[0].Type).Equal(types.FieldTypeNumber)
		gt.Value(t, out[1].Key).Equal("city")
	})

	t.Run("no duplicates is a no-op", func(t *testing.T) {
		fields := []model.FieldSchema{
			{Key: "a", Type: types.FieldTypeText},
			{Key: "b", Type: types.FieldTypeText},
		}
		out := model.DedupeFields(fields)
		gt.Value(t, out).Equal(fields)
	})

	t.Run("idempotent", func(t *testing.T) {
		fields := []model.FieldSchema{
			{Key: "a", Type: types.FieldTypeText},
			{Key: "a", Type: types.FieldTypeNumber},
			{Key: "b", Type: types.FieldTypeText},
		}
		once := model.DedupeFields(fields)
		twice := model.DedupeFields(once)
		gt.Value(t, twice).Equal(once)
	})

	t.Run("empty input", func(t *testing.T) {
		gt.Array(t, model.DedupeFields(nil)).Length(0)
	})
}

func TestTemplate_Validate(t *testing.T) {
	valid := func() *model.Template {
		return &model.Template{
			ID:       model.NewTemplateID(),
			TenantID: "acme",
			Name:     "Commercial Building",
			Entity:   types.EntityTypeBuilding,
			Fields: []model.FieldSchema{
				{Key: "total_area", Label: "Total Area", Type: types.FieldTypeNumber},
			},
		}
	}

	t.Run("valid template", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("blank name", func(t *testing.T) {
		tmpl := valid()
		tmpl.Name = ""
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrTemplateNameRequired)).True()
	})

	t.Run("empty fields", func(t *testing.T) {
		tmpl := valid()
		tmpl.Fields = nil
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrTemplateFieldsEmpty)).True()
	})

	t.Run("invalid entity type", func(t *testing.T) {
		tmpl := valid()
		tmpl.Entity = "warehouse"
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrEntityTypeInvalid)).True()
	})

	t.Run("empty derived key rejected", func(t *testing.T) {
		tmpl := valid()
		tmpl.Fields = []model.FieldSchema{
			{Key: model.DeriveKey("!!!"), Label: "!!!", Type: types.FieldTypeText},
		}
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrFieldKeyEmpty)).True()
	})

	t.Run("invalid field type", func(t *testing.T) {
		tmpl := valid()
		tmpl.Fields = []model.FieldSchema{{Key: "x", Type: "dropdown"}}
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrFieldTypeInvalid)).True()
	})

	t.Run("select without options", func(t *testing.T) {
		tmpl := valid()
		tmpl.Fields = []model.FieldSchema{{Key: "use", Type: types.FieldTypeSelect}}
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrFieldOptionsRequired)).True()
	})

	t.Run("inverted bounds", func(t *testing.T) {
		minVal, maxVal := 10.0, 5.0
		tmpl := valid()
		tmpl.Fields = []model.FieldSchema{
			{Key: "floors", Type: types.FieldTypeNumber, Min: &minVal, Max: &maxVal},
		}
		err := tmpl.Validate()
		gt.B(t, errors.Is(err, model.ErrFieldBoundsInverted)).True()
	})
}

func TestTemplate_FieldByKey(t *testing.T) {
	tmpl := &model.Template{
		Fields: []model.FieldSchema{
			{Key: "total_area", Type: types.FieldTypeNumber},
			{Key: "use", Type: types.FieldTypeSelect, Options: []string{"Residential", "Commercial"}},
		},
	}

	f, ok := tmpl.FieldByKey("use")
	gt.B(t, ok).True()
	gt.Value(t, f.Type).Equal(types.FieldTypeSelect)

	_, ok = tmpl.FieldByKey("missing")
	gt.B(t, ok).False()
}
