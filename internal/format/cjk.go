package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Traditional anti-fraud numerals as printed on financial instruments.
var (
	cjkDigits       = []string{"零", "壹", "貳", "參", "肆", "伍", "陸", "柒", "捌", "玖"}
	cjkUnits        = []string{"", "拾", "佰", "仟"}
	cjkSectionUnits = []string{"", "萬", "億", "兆"}
)

const (
	cjkZero     = "零"
	cjkYuan     = "元"
	cjkExact    = "整"
	cjkNegative = "負"
	cjkJiao     = "角"
	cjkFen      = "分"
)

// CJKUpper renders an amount as CJK legal numerals, the "uppercase"
// amount format used on checks. The amount is rounded to two decimal
// places half away from zero before the integer/cents split, so cent
// overflow (e.g. 1.999) carries into the integer part.
func CJKUpper(d decimal.Decimal) string {
	if d.IsZero() {
		return cjkZero + cjkYuan + cjkExact
	}

	sign := ""
	if d.IsNegative() {
		sign = cjkNegative
	}
	abs := d.Abs().Round(2)
	if abs.IsZero() {
		return sign + cjkZero + cjkYuan + cjkExact
	}

	intPart := abs.IntPart()
	cents := abs.Sub(decimal.NewFromInt(intPart)).Mul(decimal.NewFromInt(100)).IntPart()

	// Chunk the integer part into base-10000 sections, low to high.
	// A wholly-zero section between non-zero sections leaves a single
	// zero marker; a zero section below all non-zero ones leaves none.
	var sections []string
	unitPos := 0
	for n := intPart; n > 0; n /= 10000 {
		section := n % 10000
		if section != 0 {
			unit := ""
			if unitPos < len(cjkSectionUnits) {
				unit = cjkSectionUnits[unitPos]
			}
			sections = append([]string{sectionToCJK(section) + unit}, sections...)
		} else if len(sections) > 0 && !strings.HasPrefix(sections[0], cjkZero) {
			sections = append([]string{cjkZero}, sections...)
		}
		unitPos++
	}

	var b strings.Builder
	b.WriteString(sign)
	integerText := mergeCJKSections(sections)
	if integerText != "" {
		b.WriteString(integerText)
		b.WriteString(cjkYuan)
	}

	if cents == 0 {
		b.WriteString(cjkExact)
		return b.String()
	}

	jiao := cents / 10
	fen := cents % 10
	if jiao > 0 {
		b.WriteString(cjkDigits[jiao])
		b.WriteString(cjkJiao)
	}
	if fen > 0 {
		b.WriteString(cjkDigits[fen])
		b.WriteString(cjkFen)
	}
	return b.String()
}

// sectionToCJK converts a 1..9999 section to numerals with positional
// units, collapsing internal zero-digit runs to a single zero marker
// and never emitting a trailing one.
func sectionToCJK(section int64) string {
	var parts []string
	zero := true
	for i := 0; i < len(cjkUnits) && section > 0; i++ {
		digit := section % 10
		if digit == 0 {
			if !zero {
				parts = append([]string{cjkZero}, parts...)
			}
			zero = true
		} else {
			parts = append([]string{cjkDigits[digit] + cjkUnits[i]}, parts...)
			zero = false
		}
		section /= 10
	}
	return strings.Join(parts, "")
}

// mergeCJKSections joins sections high-to-low and normalizes zero
// markers: runs collapse to one, a marker directly before a magnitude
// unit is absorbed into the unit, and leading/trailing markers drop.
func mergeCJKSections(sections []string) string {
	s := strings.Join(sections, "")
	for strings.Contains(s, cjkZero+cjkZero) {
		s = strings.ReplaceAll(s, cjkZero+cjkZero, cjkZero)
	}
	for _, unit := range cjkSectionUnits[1:] {
		s = strings.ReplaceAll(s, cjkZero+unit, unit)
	}
	s = strings.TrimSuffix(s, cjkZero)
	s = strings.TrimPrefix(s, cjkZero)
	return s
}
