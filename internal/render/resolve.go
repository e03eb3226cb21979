// Package render resolves template fields against normalized records
// and lays them out as page-sized vector descriptions ready for a
// print or export surface.
package render

import (
	"fmt"

	"github.com/checkpress-dev/checkpress/internal/format"
	"github.com/checkpress-dev/checkpress/internal/model"
)

// Canonical role keys a data-bound field may name. Any other key is
// looked up in the original raw row.
const (
	RolePayee    = "payee"
	RoleAmount   = "amount"
	RoleAmountCN = "amount_cn"
	RoleDate     = "date"
	RoleMemo     = "memo"
)

// ResolveField produces the display text for one field. index is the
// field's position in the template, used for the positional custom-
// input fallback key. custom may be nil.
func ResolveField(field model.Field, index int, rec model.CheckRecord, custom map[string]string) string {
	if field.Input != nil {
		key := InputKey(field, index)
		if v, ok := custom[key]; ok && v != "" {
			return v
		}
		return field.Input.DefaultValue
	}

	if field.Static != nil {
		return *field.Static
	}

	if field.Key == "" {
		return ""
	}

	switch field.Key {
	case RolePayee:
		return rec.Payee
	case RoleAmount:
		return rec.AmountFormatted
	case RoleAmountCN:
		return rec.AmountCJK
	case RoleDate:
		if field.Format != "" {
			return format.Apply(rec.Date, field.Format)
		}
		return rec.Date
	case RoleMemo:
		return rec.Memo
	}

	raw, ok := rec.Raw.Lookup(field.Key)
	if field.Type == "date" {
		// Per-field date inference: serials and calendar text both
		// decode; anything else renders empty rather than leaking the
		// raw value through the generic date formatting.
		if !ok {
			return ""
		}
		t, parsed := format.ParseDate(raw)
		if !parsed {
			return ""
		}
		return format.FormatTime(t, field.Format)
	}
	if !ok {
		return ""
	}
	return format.Apply(raw, field.Format)
}

// InputKey returns the custom-input storage key for a field: the
// declared input key, else the field's data key, else a positional
// key so templates without explicit keys still get stable storage.
func InputKey(field model.Field, index int) string {
	if field.Input != nil && field.Input.Key != "" {
		return field.Input.Key
	}
	if field.Key != "" {
		return field.Key
	}
	return fmt.Sprintf("input_%d", index)
}
