package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecord_Lookup(t *testing.T) {
	r := RawRecord{"Payee Name": "Alice", "AMOUNT": "10", "empty": nil}

	// Exact match first.
	v, ok := r.Lookup("Payee Name")
	require.True(t, ok)
	assert.Equal(t, "Alice", v)

	// Case-insensitive fallback.
	v, ok = r.Lookup("amount")
	require.True(t, ok)
	assert.Equal(t, "10", v)

	// Nil values and unknown headers are absent.
	_, ok = r.Lookup("empty")
	assert.False(t, ok)
	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}
