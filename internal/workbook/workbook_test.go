package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()

	set := func(cell string, value any) {
		require.NoError(t, f.SetCellValue("Sheet1", cell, value))
	}
	set("A1", "payee")
	set("B1", "amount")
	set("C1", "date")
	set("A2", "Alice")
	set("B2", "$1,234.50")
	set("C2", "2024-01-15")
	// Row 3 stays blank and must be skipped.
	set("A4", "Bob")
	set("B4", 250)

	return f
}

func TestRead(t *testing.T) {
	f := buildWorkbook(t)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	sheets, err := Read(buf)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := sheets[0]
	assert.Equal(t, "Sheet1", sheet.Name)
	assert.Equal(t, []string{"payee", "amount", "date"}, sheet.Headers)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, "Alice", sheet.Rows[0]["payee"])
	assert.Equal(t, "$1,234.50", sheet.Rows[0]["amount"])
	assert.Equal(t, "2024-01-15", sheet.Rows[0]["date"])

	// Trailing cells missing from the row are absent, not empty.
	assert.Equal(t, "Bob", sheet.Rows[1]["payee"])
	_, ok := sheet.Rows[1].Lookup("date")
	assert.False(t, ok)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("no-such-workbook.xlsx")
	assert.Error(t, err)
}
