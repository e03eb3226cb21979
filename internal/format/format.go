// Package format converts raw cell values into display text: grouped
// currency strings, CJK legal-numeral amounts, and pattern-formatted
// dates. All functions are pure and never return errors; unformattable
// input degrades to an empty string or the value's plain string form.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Format spec names understood by Apply. Any other spec containing a
// date-pattern letter (Y, M or D) is treated as a date pattern.
const (
	SpecCurrency = "currency"
	SpecCJKUpper = "cjk_upper"
)

// Apply formats a raw cell value according to a format spec.
// A nil value is always empty. An empty spec yields the value's
// natural string form. Unrecognized specs are ignored.
func Apply(value any, spec string) string {
	if value == nil {
		return ""
	}
	if spec == "" {
		return Stringify(value)
	}

	switch spec {
	case SpecCurrency:
		d, ok := ToDecimal(value)
		if !ok {
			return ""
		}
		return Currency(d)
	case SpecCJKUpper:
		d, ok := ToDecimal(value)
		if !ok {
			return ""
		}
		return CJKUpper(d)
	}

	if strings.ContainsAny(spec, "YMD") {
		return Date(value, spec)
	}

	return Stringify(value)
}

// Currency renders an amount with thousands separators and exactly two
// fraction digits, rounding half away from zero.
func Currency(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// Stringify returns a value's natural string representation. Numbers
// use plain decimal stringification, not locale formatting.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprint(v)
	}
}

// ToDecimal coerces a raw cell value to a decimal. Non-numeric values
// and non-finite floats report false.
func ToDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(x), true
	case float32:
		return ToDecimal(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
