package parse

import (
	"regexp"
	"strings"

	"khoj.dev/citybus/workbook"
)

var viaMarker = regexp.MustCompile(`(?i)via\s*:?`)

// ViaStops finds the first row carrying a "Via"/"Via:" marker and returns
// the run of stop names following it. The run ends at the first empty
// cell; numeric and blank cells inside the run are skipped. Rows after
// the first marker row are never consulted, even when it yields nothing.
func ViaStops(rows [][]workbook.Cell) []string {
	for _, row := range rows {
		viaIdx := -1
		for i, cell := range row {
			if cell.Kind == workbook.CellText && viaMarker.MatchString(strings.TrimSpace(cell.Text)) {
				viaIdx = i
				break
			}
		}
		if viaIdx == -1 {
			continue
		}

		stops := []string{}
	collect:
		for _, cell := range row[viaIdx+1:] {
			switch {
			case cell.Kind == workbook.CellEmpty:
				break collect
			case cell.Kind == workbook.CellText && strings.TrimSpace(cell.Text) != "":
				stops = append(stops, strings.TrimSpace(cell.Text))
			}
		}

		out := []string{}
		for _, s := range stops {
			if !strings.EqualFold(s, "via") {
				out = append(out, s)
			}
		}
		return out
	}

	return []string{}
}
