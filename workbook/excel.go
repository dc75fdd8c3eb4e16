package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads worksheets from an .xlsx workbook on disk.
type ExcelReader struct {
	path string
}

func NewExcelReader(path string) *ExcelReader {
	return &ExcelReader{path: path}
}

func (r *ExcelReader) Worksheets() ([]Worksheet, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var sheets []Worksheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", name, err)
		}

		grid := make([][]Cell, len(rows))
		for i, row := range rows {
			cells := make([]Cell, len(row))
			for j, raw := range row {
				cells[j] = classify(raw)
			}
			grid[i] = cells
		}
		sheets = append(sheets, Worksheet{Name: name, Rows: grid})
	}

	return sheets, nil
}

// classify maps a raw cell value onto the Empty/Text/Number variants. Raw
// values arrive as strings; time and other numeric cells parse as floats,
// everything else is text.
func classify(raw string) Cell {
	if strings.TrimSpace(raw) == "" {
		return Empty()
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(n)
	}
	return Text(raw)
}
