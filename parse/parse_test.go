package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khoj.dev/citybus/workbook"
)

func TestParseWorksheet(t *testing.T) {
	ws := workbook.Worksheet{
		Name: "Route No.7",
		Rows: [][]workbook.Cell{
			workbook.Row("Via:", "A", "B"),
			workbook.Row("Station", "To", "C"),
			workbook.Row("06:00", nil, "06:20"),
			workbook.Row("06:30", nil, "06:50"),
		},
	}

	sheet, err := ParseWorksheet(ws)
	require.NoError(t, err)

	assert.Equal(t, []string{"7"}, sheet.RouteNumbers)
	assert.Equal(t, []string{"A", "B"}, sheet.ViaStops)
	assert.Equal(t, "Station", sheet.StartPoint)
	assert.Equal(t, "C", sheet.EndPoint)
	assert.Equal(t, "06:00", sheet.FirstBus)
	assert.Equal(t, "06:30", sheet.LastBus)
	assert.Equal(t, []string{"Station", "A", "B", "C"}, sheet.Stops)
}

func TestParseWorksheetMultipleRoutes(t *testing.T) {
	ws := workbook.Worksheet{
		Name: "Route No.3B and C",
		Rows: [][]workbook.Cell{
			workbook.Row("Station", "To", "Gotri"),
			workbook.Row("05:30", nil, "06:00"),
		},
	}

	sheet, err := ParseWorksheet(ws)
	require.NoError(t, err)
	assert.Equal(t, []string{"3B", "3C"}, sheet.RouteNumbers)
}

func TestParseWorksheetEndpointDeduplicated(t *testing.T) {
	// The end point repeats the last via stop; the ordered stop list
	// keeps the first occurrence only.
	ws := workbook.Worksheet{
		Name: "Route No.5",
		Rows: [][]workbook.Cell{
			workbook.Row("Via:", "A", "Harbor"),
			workbook.Row("Station", "To", "Harbor"),
			workbook.Row("06:00", nil, "06:20"),
		},
	}

	sheet, err := ParseWorksheet(ws)
	require.NoError(t, err)
	assert.Equal(t, "Harbor", sheet.EndPoint)
	assert.Equal(t, []string{"Station", "A", "Harbor"}, sheet.Stops)
}

func TestParseWorksheetNoRouteNumber(t *testing.T) {
	ws := workbook.Worksheet{
		Name: "Notes",
		Rows: [][]workbook.Cell{
			workbook.Row("Station", "To", "C"),
			workbook.Row("06:00", nil, "06:20"),
		},
	}

	_, err := ParseWorksheet(ws)
	assert.ErrorIs(t, err, ErrNoRouteNumber)
}

func TestParseWorksheetNoSchedule(t *testing.T) {
	ws := workbook.Worksheet{
		Name: "Route No.7",
		Rows: [][]workbook.Cell{
			workbook.Row("Via:", "A", "B"),
		},
	}

	_, err := ParseWorksheet(ws)
	assert.ErrorIs(t, err, ErrNoSchedule)
}

func TestParseWorksheetFirstLastBusAcrossBlocks(t *testing.T) {
	ws := workbook.Worksheet{
		Name: "Route No.9",
		Rows: [][]workbook.Cell{
			workbook.Row("Station", "To", "Airport", nil, "Station", "To", "Harbor"),
			workbook.Row("07:00", nil, "07:30", nil, "05:45", nil, "06:15"),
			workbook.Row("21:00", nil, "21:30", nil, "22:15", nil, "22:45"),
		},
	}

	sheet, err := ParseWorksheet(ws)
	require.NoError(t, err)
	assert.Equal(t, "05:45", sheet.FirstBus)
	assert.Equal(t, "22:15", sheet.LastBus)
}
