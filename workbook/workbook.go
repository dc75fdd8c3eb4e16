package workbook

// Cells in the route workbooks are loosely typed: blank, free text, or a
// numeric (times come through as fractions of a 24 hour day).
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

func Empty() Cell           { return Cell{Kind: CellEmpty} }
func Text(s string) Cell    { return Cell{Kind: CellText, Text: s} }
func Number(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// Worksheet is one sheet of a workbook: its declared name and a grid of
// cells. Rows may have differing lengths; reading past the end of a row
// yields empty cells.
type Worksheet struct {
	Name string
	Rows [][]Cell
}

// Cell returns the cell at (row, col), or an empty cell when the
// coordinates fall outside the grid.
func (ws Worksheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(ws.Rows) {
		return Empty()
	}
	r := ws.Rows[row]
	if col < 0 || col >= len(r) {
		return Empty()
	}
	return r[col]
}

// A thing capable of producing worksheets, in workbook order.
type Reader interface {
	Worksheets() ([]Worksheet, error)
}

// Row builds a row of cells from a mix of strings and numbers. Nils and
// empty strings become empty cells. Mostly useful in tests.
func Row(values ...interface{}) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case nil:
			cells[i] = Empty()
		case string:
			if t == "" {
				cells[i] = Empty()
			} else {
				cells[i] = Text(t)
			}
		case float64:
			cells[i] = Number(t)
		case int:
			cells[i] = Number(float64(t))
		}
	}
	return cells
}
