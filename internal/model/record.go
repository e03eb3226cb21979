package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawRecord is a single spreadsheet row, keyed by column header.
// Keys and their casing are whatever the source sheet produced.
type RawRecord map[string]any

// Lookup returns the value for a column header, trying an exact match
// first and then a case-insensitive match.
func (r RawRecord) Lookup(key string) (any, bool) {
	if v, ok := r[key]; ok && v != nil {
		return v, true
	}
	lower := strings.ToLower(key)
	for k, v := range r {
		if v != nil && strings.ToLower(k) == lower {
			return v, true
		}
	}
	return nil, false
}

// CheckRecord is a normalized row, validated and pre-formatted for
// direct template consumption. Amount is always a valid decimal; rows
// that fail coercion are reported as errors instead of stored.
type CheckRecord struct {
	Payee           string
	Amount          decimal.Decimal
	AmountFormatted string // grouped decimal, e.g. "1,234.50"
	AmountCJK       string // CJK legal numerals, e.g. 壹仟貳佰參拾肆元伍角
	Date            string
	Memo            string

	// Raw is the original row, kept for template fields that reference
	// columns outside the fixed role set.
	Raw RawRecord
}
