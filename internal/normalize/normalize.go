// Package normalize maps raw heterogeneous spreadsheet rows into
// validated CheckRecords. Bad rows become human-readable error strings
// keyed by the 1-based display row number; the batch always continues.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/checkpress-dev/checkpress/internal/format"
	"github.com/checkpress-dev/checkpress/internal/model"
)

// Mapping binds the closed set of logical roles to expected column
// headers. Matching is exact first, then case-insensitive. Date and
// Memo are optional roles; an empty header disables them.
type Mapping struct {
	Payee  string
	Amount string
	Date   string
	Memo   string
}

// DefaultMapping returns the conventional header names.
func DefaultMapping() Mapping {
	return Mapping{Payee: "payee", Amount: "amount", Date: "date", Memo: "memo"}
}

// Result is the outcome of normalizing a batch of rows. Record order
// matches input row order minus dropped rows; error order matches the
// order of discovery.
type Result struct {
	Records []model.CheckRecord
	Errors  []string
}

// Normalizer converts raw rows into CheckRecords.
type Normalizer struct {
	mapping     Mapping
	datePattern string
}

// New creates a Normalizer. Zero-value mapping roles fall back to
// DefaultMapping; an empty datePattern falls back to YYYY-MM-DD.
func New(mapping Mapping, datePattern string) *Normalizer {
	def := DefaultMapping()
	if mapping.Payee == "" {
		mapping.Payee = def.Payee
	}
	if mapping.Amount == "" {
		mapping.Amount = def.Amount
	}
	if datePattern == "" {
		datePattern = format.DefaultDatePattern
	}
	return &Normalizer{mapping: mapping, datePattern: datePattern}
}

// Normalize processes rows in order. Row N in error strings is the
// 1-based spreadsheet row (index + 2, accounting for the header row).
func (n *Normalizer) Normalize(rows []model.RawRecord) Result {
	var result Result

	for i, row := range rows {
		rowNum := i + 2

		payee := lookupString(row, n.mapping.Payee)
		if payee == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing payee", rowNum))
			continue
		}

		amountRaw, _ := row.Lookup(n.mapping.Amount)
		amount, ok := coerceAmount(amountRaw)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Invalid amount", rowNum))
			continue
		}

		rec := model.CheckRecord{
			Payee:           payee,
			Amount:          amount,
			AmountFormatted: format.Currency(amount),
			AmountCJK:       format.CJKUpper(amount),
			Raw:             row,
		}

		if n.mapping.Date != "" {
			dateRaw, _ := row.Lookup(n.mapping.Date)
			rec.Date = n.coerceDate(dateRaw)
		}
		if n.mapping.Memo != "" {
			rec.Memo = lookupString(row, n.mapping.Memo)
		}

		result.Records = append(result.Records, rec)
	}

	return result
}

// DatePattern returns the pattern used for the canonical date string.
func (n *Normalizer) DatePattern() string { return n.datePattern }

// coerceAmount scrubs everything but digits, minus and decimal point,
// then parses. An empty or unparseable remainder is a failure.
func coerceAmount(v any) (decimal.Decimal, bool) {
	if v == nil {
		return decimal.Decimal{}, false
	}
	scrubbed := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return -1
	}, format.Stringify(v))

	d, err := decimal.NewFromString(scrubbed)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// coerceDate formats a raw date cell per the configured pattern.
// Strings, finite numbers (spreadsheet serials) and time values are
// accepted; anything else is treated as absent. Decode failures yield
// an empty string, never the current time.
func (n *Normalizer) coerceDate(v any) string {
	switch v.(type) {
	case string, float64, float32, int, int64, time.Time:
		t, ok := format.ParseDate(v)
		if !ok {
			return ""
		}
		return format.FormatTime(t, n.datePattern)
	default:
		return ""
	}
}

func lookupString(row model.RawRecord, key string) string {
	v, ok := row.Lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(format.Stringify(v))
}
