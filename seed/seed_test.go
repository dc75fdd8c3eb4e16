package seed_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khoj.dev/citybus/seed"
	"khoj.dev/citybus/testutil"
)

const stopsCSV = `name,name_gu,latitude,longitude
Station,સ્ટેશન,22.3104,73.1812
Alkapuri,,22.3094,73.1639
Gotri,ગોત્રી,22.3389,73.1389
`

const routesCSV = `route_number,name,name_gu,start_point,end_point,distance,estimated_time,first_bus,last_bus,frequency,fare,color,stops
7,Station - Gotri,,Station,Gotri,8.2,35,06:00,22:30,15 mins,15,#1E88E5,Station|Alkapuri|Gotri
12,Station - Airport,,Station,Airport,11,45,,,,,,
`

func TestLoadStops(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	n, err := seed.LoadStops(s, strings.NewReader(stopsCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	st, err := s.StopByName("Station")
	require.NoError(t, err)
	assert.Equal(t, 22.3104, st.Latitude)
	assert.Equal(t, 73.1812, st.Longitude)
	assert.Equal(t, "સ્ટેશન", st.NameGu.String)

	// Blank name_gu stays null.
	st, err = s.StopByName("Alkapuri")
	require.NoError(t, err)
	assert.False(t, st.NameGu.Valid)
}

func TestLoadStopsOverwritesPlaceholders(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	// Workbook ingestion creates stops with zero coordinates; seeding
	// fills them in afterwards.
	_, err := seed.LoadStops(s, strings.NewReader("name,name_gu,latitude,longitude\nGotri,,0,0\n"))
	require.NoError(t, err)

	_, err = seed.LoadStops(s, strings.NewReader(stopsCSV))
	require.NoError(t, err)

	st, err := s.StopByName("Gotri")
	require.NoError(t, err)
	assert.Equal(t, 22.3389, st.Latitude)
}

func TestLoadStopsRejectsMissingName(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	_, err := seed.LoadStops(s, strings.NewReader("name,name_gu,latitude,longitude\n  ,,1,2\n"))
	assert.Error(t, err)
}

func TestLoadRoutes(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	n, err := seed.LoadRoutes(s, strings.NewReader(routesCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	r, err := s.RouteByNumber("7")
	require.NoError(t, err)
	assert.Equal(t, 8.2, r.Distance.Float64)
	assert.Equal(t, int64(35), r.EstimatedTime.Int64)
	assert.Equal(t, "15 mins", r.Frequency.String)
	assert.Equal(t, 15.0, r.Fare.Float64)
	assert.Equal(t, "#1E88E5", r.Color.String)

	stops, err := s.RouteStops(r.ID)
	require.NoError(t, err)
	require.Len(t, stops, 3)
	assert.Equal(t, "Alkapuri", stops[1].Name)

	// The second row has no stops column; nothing is associated.
	r, err = s.RouteByNumber("12")
	require.NoError(t, err)
	assert.False(t, r.FirstBus.Valid)

	stops, err = s.RouteStops(r.ID)
	require.NoError(t, err)
	assert.Empty(t, stops)
}

func TestLoadRoutesKeepsIngestedSchedule(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	// Seeding after a workbook import must not null out the schedule
	// fields the import wrote.
	_, err := seed.LoadRoutes(s, strings.NewReader(
		"route_number,name,name_gu,start_point,end_point,distance,estimated_time,first_bus,last_bus,frequency,fare,color,stops\n"+
			"7,Station - Gotri,,Station,Gotri,8.2,,06:00,22:30,,,,\n"))
	require.NoError(t, err)

	_, err = seed.LoadRoutes(s, strings.NewReader(
		"route_number,name,name_gu,start_point,end_point,distance,estimated_time,first_bus,last_bus,frequency,fare,color,stops\n"+
			"7,Station - Gotri,,Station,Gotri,,,,,15 mins,,,\n"))
	require.NoError(t, err)

	r, err := s.RouteByNumber("7")
	require.NoError(t, err)
	assert.Equal(t, 8.2, r.Distance.Float64)
	assert.Equal(t, "15 mins", r.Frequency.String)
}

func TestLoadDir(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stops.csv"), []byte(stopsCSV), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes.csv"), []byte(routesCSV), 0644))

	stops, routes, err := seed.LoadDir(s, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, stops)
	assert.Equal(t, 2, routes)
}

func TestLoadDirMissingFiles(t *testing.T) {
	s := testutil.BuildStorage(t, "sqlite")

	stops, routes, err := seed.LoadDir(s, t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, stops)
	assert.Zero(t, routes)
}
