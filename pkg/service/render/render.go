// Package render maps field schemas plus entity data values onto structured
// edit-control and read-only display descriptors. It is the single place
// that dispatches over every field type; both descriptor kinds share the
// wide-layout rule so a two-column form and its view stay visually aligned.
package render

import (
	"strconv"

	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NotProvided is the placeholder shown for unset values in display mode.
// Display output is never blank: an empty cell would be indistinguishable
// from missing markup.
const NotProvided = "Not provided"

// wideField reports whether a field spans both columns of the standard
// two-column layout. Applied identically by controls and displays.
func wideField(t types.FieldType) bool {
	switch t {
	case types.FieldTypeTextarea, types.FieldTypeMultiSelect, types.FieldTypeImage, types.FieldTypeFile:
		return true
	default:
		return false
	}
}

// asStrings normalizes a stored multiselect value, which is []string when
// set in-process and []any after a JSON round-trip. Order is preserved.
// Non-string elements are dropped rather than failing the whole render.
func asStrings(value any) []string {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// asNumber normalizes a stored numeric value
func asNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// isEmpty reports whether a stored value counts as unset
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
