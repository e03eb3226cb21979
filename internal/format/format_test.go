package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"100", "100.00"},
		{"1234.5", "1,234.50"},
		{"12.3456", "12.35"},
		{"999999.995", "1,000,000.00"},
		{"-1234567.891", "-1,234,567.89"},
		{"1000000000", "1,000,000,000.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Currency(dec(t, tc.amount)), "amount %s", tc.amount)
	}
}

func TestApply_NilAlwaysEmpty(t *testing.T) {
	assert.Equal(t, "", Apply(nil, ""))
	assert.Equal(t, "", Apply(nil, SpecCurrency))
	assert.Equal(t, "", Apply(nil, "YYYY-MM-DD"))
}

func TestApply_NoSpecStringifies(t *testing.T) {
	assert.Equal(t, "1234.5", Apply(1234.5, ""))
	assert.Equal(t, "hello", Apply("hello", ""))
	assert.Equal(t, "42", Apply(42, ""))
}

func TestApply_Currency(t *testing.T) {
	assert.Equal(t, "1,234.50", Apply(1234.5, SpecCurrency))
	assert.Equal(t, "1,234.50", Apply("1234.5", SpecCurrency))
	// Coercion failure degrades to empty, never an error.
	assert.Equal(t, "", Apply("abc", SpecCurrency))
	assert.Equal(t, "", Apply("$1,234.50", SpecCurrency))
	assert.Equal(t, "", Apply(math.NaN(), SpecCurrency))
}

func TestApply_CJKUpper(t *testing.T) {
	assert.Equal(t, "壹仟貳佰參拾肆元伍角", Apply(1234.5, SpecCJKUpper))
	assert.Equal(t, "零元整", Apply("0", SpecCJKUpper))
	assert.Equal(t, "", Apply(math.Inf(1), SpecCJKUpper))
	assert.Equal(t, "", Apply("garbage", SpecCJKUpper))
}

func TestApply_DatePattern(t *testing.T) {
	assert.Equal(t, "2024/01/15", Apply("2024-01-15", "YYYY/MM/DD"))
	// Spreadsheet serials are dates too.
	assert.Equal(t, "1900-02-14", Apply(45.0, "YYYY-MM-DD"))
	// Unparseable input falls back to the original stringified value.
	assert.Equal(t, "next tuesday", Apply("next tuesday", "YYYY-MM-DD"))
}

func TestApply_UnknownSpecIgnored(t *testing.T) {
	assert.Equal(t, "hello", Apply("hello", "upper"))
	assert.Equal(t, "7", Apply(7, "zzz"))
}

func TestToDecimal(t *testing.T) {
	d, ok := ToDecimal(" 12.5 ")
	require.True(t, ok)
	assert.Equal(t, "12.5", d.String())

	_, ok = ToDecimal("")
	assert.False(t, ok)
	_, ok = ToDecimal(nil)
	assert.False(t, ok)
	_, ok = ToDecimal(math.Inf(-1))
	assert.False(t, ok)
	_, ok = ToDecimal([]string{})
	assert.False(t, ok)
}
