// Package export writes record collections as XLSX workbooks with excelize.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is Excel's limit on sheet name length
const maxSheetName = 31

// Column describes one exported column
type Column struct {
	Header string
	Width  float64
}

// Sheet is a single-table workbook
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// AddRow appends a row; values are converted per cell when written.
func (s *Sheet) AddRow(values ...any) {
	s.Rows = append(s.Rows, values)
}

// WriteXLSX renders the sheet into an in-memory workbook.
// Decimals become numeric cells, times become dates and strings are guarded against formula injection.
func WriteXLSX(s *Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	name := s.Name
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	if name == "" {
		name = "Export"
	}
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	dateFormat := "dd-mm-yyyy"
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return nil, fmt.Errorf("create date style: %w", err)
	}

	header := make([]any, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = c.Header
		if c.Width > 0 {
			col, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(name, col, col, c.Width); err != nil {
				return nil, fmt.Errorf("set col width %s: %w", col, err)
			}
		}
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if len(s.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(s.Columns), 1)
		if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
	}

	for i, values := range s.Rows {
		row := i + 2
		cells := make([]any, len(values))
		for j, v := range values {
			cells[j] = cellValue(v)
			if _, ok := cells[j].(time.Time); ok {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				if err := f.SetCellStyle(name, cell, cell, dateStyle); err != nil {
					return nil, fmt.Errorf("style %s: %w", cell, err)
				}
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(name, cell, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if err := f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case *decimal.Decimal:
		if x == nil {
			return nil
		}
		return x.InexactFloat64()
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x
	case string:
		return sanitizeCell(x)
	case fmt.Stringer:
		return sanitizeCell(x.String())
	default:
		return v
	}
}

// sanitizeCell prefixes a quote to values Excel would otherwise treat as formulas.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
