package citybus_test

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khoj.dev/citybus"
	"khoj.dev/citybus/storage"
	"khoj.dev/citybus/testutil"
	"khoj.dev/citybus/workbook"
)

func buildImporter(t *testing.T, backend string) (*citybus.Importer, storage.Storage) {
	t.Helper()

	s := testutil.BuildStorage(t, backend)
	im := citybus.NewImporter(s)
	im.Logger = log.New(io.Discard, "", 0)
	return im, s
}

func routeSevenSheet() workbook.Worksheet {
	return workbook.Worksheet{
		Name: "Route No.7",
		Rows: [][]workbook.Cell{
			workbook.Row("Via:", "A", "B"),
			workbook.Row("Station", "To", "C"),
			workbook.Row("06:00", nil, "06:20"),
			workbook.Row("06:30", nil, "06:50"),
		},
	}
}

func TestImporterEndToEnd(t *testing.T) {
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			im, s := buildImporter(t, backend)

			result, err := im.Run(workbook.NewMemory(routeSevenSheet()))
			require.NoError(t, err)
			assert.Equal(t, citybus.Result{Success: 1, Errors: 0}, result)

			r, err := s.RouteByNumber("7")
			require.NoError(t, err)
			assert.Equal(t, "Station - C", r.Name)
			assert.Equal(t, "Station", r.StartPoint)
			assert.Equal(t, "C", r.EndPoint)
			assert.Equal(t, "06:00", r.FirstBus.String)
			assert.Equal(t, "06:30", r.LastBus.String)
			assert.False(t, r.Distance.Valid)
			assert.False(t, r.Fare.Valid)

			stops, err := s.RouteStops(r.ID)
			require.NoError(t, err)
			require.Len(t, stops, 4)
			for i, name := range []string{"Station", "A", "B", "C"} {
				assert.Equal(t, name, stops[i].Name)
				assert.Equal(t, 0.0, stops[i].Latitude)
				assert.Equal(t, 0.0, stops[i].Longitude)
			}
		})
	}
}

func TestImporterIdempotent(t *testing.T) {
	im, s := buildImporter(t, "sqlite")
	wb := workbook.NewMemory(routeSevenSheet())

	result, err := im.Run(wb)
	require.NoError(t, err)
	require.Equal(t, citybus.Result{Success: 1, Errors: 0}, result)

	r1, err := s.RouteByNumber("7")
	require.NoError(t, err)
	stops1, err := s.RouteStops(r1.ID)
	require.NoError(t, err)

	// A second run over the unchanged workbook leaves one route with
	// one set of associations, in the same order.
	result, err = im.Run(wb)
	require.NoError(t, err)
	require.Equal(t, citybus.Result{Success: 1, Errors: 0}, result)

	r2, err := s.RouteByNumber("7")
	require.NoError(t, err)
	assert.Equal(t, r1.ID, r2.ID)

	stops2, err := s.RouteStops(r2.ID)
	require.NoError(t, err)
	require.Equal(t, len(stops1), len(stops2))
	for i := range stops1 {
		assert.Equal(t, stops1[i].Name, stops2[i].Name)
	}

	routes, err := s.Routes()
	require.NoError(t, err)
	assert.Len(t, routes, 1)
}

func TestImporterMultipleRouteNumbers(t *testing.T) {
	im, s := buildImporter(t, "sqlite")

	result, err := im.Run(workbook.NewMemory(workbook.Worksheet{
		Name: "Route No.3B and C",
		Rows: [][]workbook.Cell{
			workbook.Row("Via:", "Sayajigunj"),
			workbook.Row("Station", "To", "Gotri"),
			workbook.Row("05:30", nil, "06:00"),
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, citybus.Result{Success: 2, Errors: 0}, result)

	for _, number := range []string{"3B", "3C"} {
		r, err := s.RouteByNumber(number)
		require.NoError(t, err)
		assert.Equal(t, "Station - Gotri", r.Name)

		stops, err := s.RouteStops(r.ID)
		require.NoError(t, err)
		require.Len(t, stops, 3)
	}

	// Stops are shared between the sibling routes, not duplicated.
	st, err := s.StopByName("Sayajigunj")
	require.NoError(t, err)
	assert.NotZero(t, st.ID)
}

func TestImporterSkipsBadWorksheets(t *testing.T) {
	im, s := buildImporter(t, "sqlite")

	result, err := im.Run(workbook.NewMemory(
		workbook.Worksheet{
			// No route number in the name.
			Name: "Summary",
			Rows: [][]workbook.Cell{
				workbook.Row("Station", "To", "C"),
				workbook.Row("06:00", nil, "06:20"),
			},
		},
		workbook.Worksheet{
			// Route number but no schedule data.
			Name: "Route No.12",
			Rows: [][]workbook.Cell{
				workbook.Row("Via:", "A", "B"),
			},
		},
		routeSevenSheet(),
	))
	require.NoError(t, err)
	assert.Equal(t, citybus.Result{Success: 1, Errors: 2}, result)

	// The skipped worksheets wrote nothing.
	_, err = s.RouteByNumber("12")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	routes, err := s.Routes()
	require.NoError(t, err)
	assert.Len(t, routes, 1)
}
