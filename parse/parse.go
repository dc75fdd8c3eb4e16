package parse

import (
	"errors"
	"sort"

	"khoj.dev/citybus/workbook"
)

var (
	// ErrNoRouteNumber marks a worksheet whose name carries no usable
	// route number.
	ErrNoRouteNumber = errors.New("no route number in worksheet name")

	// ErrNoSchedule marks a worksheet without any schedule block.
	ErrNoSchedule = errors.New("no schedule data in worksheet")
)

// A RouteSheet is everything extracted from one worksheet, ready for
// persistence. One sheet can describe several route numbers sharing the
// same stops and times.
type RouteSheet struct {
	RouteNumbers []string
	ViaStops     []string
	Blocks       []ScheduleBlock
	StartPoint   string
	EndPoint     string
	FirstBus     string // "HH:MM", "" when no departures at all
	LastBus      string
	Stops        []string // ordered: start, via stops, end; deduplicated
}

// ParseWorksheet runs all extraction heuristics over a single worksheet.
// Returns ErrNoRouteNumber or ErrNoSchedule when the sheet should be
// skipped.
func ParseWorksheet(ws workbook.Worksheet) (*RouteSheet, error) {
	numbers := RouteNumbers(ws.Name)
	if len(numbers) == 0 {
		return nil, ErrNoRouteNumber
	}

	via := ViaStops(ws.Rows)

	blocks := ScheduleBlocks(ws.Rows)
	if len(blocks) == 0 {
		return nil, ErrNoSchedule
	}

	start, end := ResolveEndpoints(blocks, via)

	// First and last bus are the min/max departure across all blocks.
	// Lexicographic order is correct for zero-padded 24h times.
	var departures []string
	for _, b := range blocks {
		for _, t := range b.Times {
			if t.Departure != "" {
				departures = append(departures, t.Departure)
			}
		}
	}
	sort.Strings(departures)

	sheet := &RouteSheet{
		RouteNumbers: numbers,
		ViaStops:     via,
		Blocks:       blocks,
		StartPoint:   start,
		EndPoint:     end,
	}
	if len(departures) > 0 {
		sheet.FirstBus = departures[0]
		sheet.LastBus = departures[len(departures)-1]
	}

	seen := map[string]bool{}
	stops := make([]string, 0, len(via)+2)
	for _, name := range append(append([]string{start}, via...), end) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		stops = append(stops, name)
	}
	sheet.Stops = stops

	return sheet, nil
}
