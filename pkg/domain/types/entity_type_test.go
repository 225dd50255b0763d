package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

func TestEntityType_IsValid(t *testing.T) {
	for _, et := range types.AllEntityTypes() {
		t.Run(et.String(), func(t *testing.T) {
			gt.B(t, et.IsValid()).True()
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		gt.B(t, types.EntityType("contact").IsValid()).False()
	})
}

func TestParseEntityType(t *testing.T) {
	got, err := types.ParseEntityType("building")
	gt.NoError(t, err)
	gt.Value(t, got).Equal(types.EntityTypeBuilding)

	_, err = types.ParseEntityType("buildings")
	gt.Error(t, err)
}

func TestTenantID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.TenantID
		wantErr bool
	}{
		{name: "valid simple", id: "acme"},
		{name: "valid hyphenated", id: "acme-properties"},
		{name: "valid with digits", id: "tenant-42"},
		{name: "empty", id: "", wantErr: true},
		{name: "uppercase", id: "Acme", wantErr: true},
		{name: "underscore", id: "acme_props", wantErr: true},
		{name: "trailing hyphen", id: "acme-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
