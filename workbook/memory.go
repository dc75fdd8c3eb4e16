package workbook

// Memory is an in-memory Reader, for tests and programmatically built
// workbooks.
type Memory struct {
	Sheets []Worksheet
}

func NewMemory(sheets ...Worksheet) *Memory {
	return &Memory{Sheets: sheets}
}

func (m *Memory) Worksheets() ([]Worksheet, error) {
	return m.Sheets, nil
}
