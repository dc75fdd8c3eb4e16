package parse

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"khoj.dev/citybus/workbook"
)

// A ScheduleBlock is one origin/destination column pair and the timed
// trips listed beneath its header row.
type ScheduleBlock struct {
	From  string
	To    string
	Times []TimePair
}

// TimePair is one trip: departure from the origin column, arrival at the
// destination column. Both are "HH:MM" strings.
type TimePair struct {
	Departure string
	Arrival   string
}

// The workbooks label every origin column with the literal "Station"
// rather than naming the terminus, and blocks carry that literal through.
// Kept as-is for fidelity with the source data; see DESIGN.md.
const originLabel = "Station"

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Time converts a cell to an "HH:MM" string. Clock strings pass through
// unchanged; numeric cells are treated as fractions of a 24 hour day and
// truncated to the minute. Everything else yields "".
func Time(c workbook.Cell) string {
	switch c.Kind {
	case workbook.CellText:
		s := strings.TrimSpace(c.Text)
		if clockPattern.MatchString(s) {
			return s
		}
	case workbook.CellNumber:
		totalSeconds := int(math.Floor(c.Number * 86400))
		hours := totalSeconds / 3600
		minutes := (totalSeconds % 3600) / 60
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}
	return ""
}

// ScheduleBlocks scans the grid for "Station"/destination header pairs
// and collects the (departure, arrival) rows beneath each. Header pairs
// are deduplicated by column positions across the whole sheet. Blocks
// without any complete time row are dropped.
func ScheduleBlocks(rows [][]workbook.Cell) []ScheduleBlock {
	var blocks []ScheduleBlock
	processed := map[[2]int]bool{}

	for i, row := range rows {
		for stationIdx, cell := range row {
			if cell.Kind != workbook.CellText {
				continue
			}
			if !strings.Contains(strings.ToLower(strings.TrimSpace(cell.Text)), "station") {
				continue
			}

			// The destination is the next non-empty cell, skipping any
			// decorative "To" column.
			destIdx := stationIdx + 1
			for destIdx < len(row) && (row[destIdx].Kind == workbook.CellEmpty || strings.TrimSpace(cellString(row[destIdx])) == "To") {
				destIdx++
			}
			if destIdx >= len(row) || row[destIdx].Kind == workbook.CellEmpty {
				continue
			}

			if processed[[2]int{stationIdx, destIdx}] {
				continue
			}
			processed[[2]int{stationIdx, destIdx}] = true

			destination := strings.TrimSpace(cellString(row[destIdx]))

			var times []TimePair
			collecting := false
			for _, timeRow := range rows[i+1:] {
				departure := Time(cellAt(timeRow, stationIdx))
				arrival := Time(cellAt(timeRow, destIdx))

				if departure != "" && arrival != "" {
					times = append(times, TimePair{Departure: departure, Arrival: arrival})
					collecting = true
				} else if collecting && departure == "" && arrival == "" {
					// A fully blank row ends the block. A row with only
					// one parseable time does not.
					break
				}
			}

			if len(times) > 0 {
				blocks = append(blocks, ScheduleBlock{
					From:  originLabel,
					To:    destination,
					Times: times,
				})
			}
		}
	}

	return blocks
}

func cellAt(row []workbook.Cell, idx int) workbook.Cell {
	if idx < 0 || idx >= len(row) {
		return workbook.Empty()
	}
	return row[idx]
}

func cellString(c workbook.Cell) string {
	switch c.Kind {
	case workbook.CellText:
		return c.Text
	case workbook.CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}
