package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteXLSX(t *testing.T) {
	sheet := &Sheet{
		Name: "Todis",
		Columns: []Column{
			{Header: "Date", Width: 12},
			{Header: "Munim", Width: 20},
			{Header: "Final Cost", Width: 14},
		},
	}
	sheet.AddRow(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "Mohan", decimal.RequireFromString("62.46"))
	sheet.AddRow(time.Time{}, "=HYPERLINK(\"x\")", decimal.Zero)

	data, err := WriteXLSX(sheet)
	require.NoError(t, err)
	f := open(t, data)

	assert.Equal(t, []string{"Todis"}, f.GetSheetList())
	rows, err := f.GetRows("Todis")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Munim", "Final Cost"}, rows[0])
	assert.Equal(t, "Mohan", rows[1][1])
	assert.Equal(t, "62.46", rows[1][2])

	injected, err := f.GetCellValue("Todis", "B3")
	require.NoError(t, err)
	assert.Equal(t, "'=HYPERLINK(\"x\")", injected)

	empty, err := f.GetCellValue("Todis", "A3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWriteXLSX_SheetName(t *testing.T) {
	data, err := WriteXLSX(&Sheet{Name: "A name that is far longer than thirty one characters"})
	require.NoError(t, err)
	assert.Len(t, open(t, data).GetSheetList()[0], maxSheetName)

	data, err = WriteXLSX(&Sheet{})
	require.NoError(t, err)
	assert.Equal(t, "Export", open(t, data).GetSheetList()[0])
}

func TestSanitizeCell(t *testing.T) {
	assert.Equal(t, "'+1", sanitizeCell("+1"))
	assert.Equal(t, "'-5", sanitizeCell("-5"))
	assert.Equal(t, "plain", sanitizeCell("plain"))
	assert.Equal(t, "", sanitizeCell(""))
}

func TestCellValue(t *testing.T) {
	var nilDec *decimal.Decimal
	assert.Nil(t, cellValue(nilDec))
	assert.Equal(t, 1.5, cellValue(decimal.RequireFromString("1.5")))
	assert.Equal(t, int64(7), cellValue(int64(7)))
}
