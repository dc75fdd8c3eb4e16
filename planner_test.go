package citybus_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khoj.dev/citybus"
	"khoj.dev/citybus/model"
	"khoj.dev/citybus/storage"
	"khoj.dev/citybus/testutil"
)

func plannerFixture(t *testing.T) (*citybus.Planner, storage.Storage) {
	t.Helper()

	s := testutil.BuildStorage(t, "sqlite")

	addRoute(t, s, "1", []string{"Station", "Alkapuri", "Gotri"}, 8)
	addRoute(t, s, "2", []string{"Gotri", "Alkapuri", "Station"}, 8)
	addRoute(t, s, "3", []string{"Station", "Fatehgunj", "Airport"}, 0)

	return citybus.NewPlanner(s), s
}

func addRoute(t *testing.T, s storage.Storage, number string, stops []string, distanceKm float64) {
	t.Helper()

	route := &model.Route{
		RouteNumber: number,
		Name:        stops[0] + " - " + stops[len(stops)-1],
		StartPoint:  stops[0],
		EndPoint:    stops[len(stops)-1],
	}
	if distanceKm != 0 {
		route.Distance = sql.NullFloat64{Float64: distanceKm, Valid: true}
	}

	routeID, err := s.MergeRouteMetadata(route)
	require.NoError(t, err)

	var stopIDs []int64
	for _, name := range stops {
		id, err := s.FindOrCreateStop(&model.Stop{Name: name})
		require.NoError(t, err)
		stopIDs = append(stopIDs, id)
	}
	require.NoError(t, s.ReplaceRouteStops(routeID, stopIDs))
}

func TestPlanJourney(t *testing.T) {
	p, _ := plannerFixture(t)

	journeys, err := p.PlanJourney("Station", "Gotri")
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, "1", journeys[0].Route.RouteNumber)

	// 5 + 8 * 1.5 = 17 rupees for the general category.
	assert.Equal(t, 17.0, journeys[0].Fare)

	// The reverse direction is served by the other route.
	journeys, err = p.PlanJourney("Gotri", "Station")
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, "2", journeys[0].Route.RouteNumber)
}

func TestPlanJourneyUnknownDistance(t *testing.T) {
	p, _ := plannerFixture(t)

	journeys, err := p.PlanJourney("Station", "Airport")
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, "3", journeys[0].Route.RouteNumber)
	assert.Zero(t, journeys[0].Fare)
}

func TestPlanJourneyNoRoute(t *testing.T) {
	p, _ := plannerFixture(t)

	journeys, err := p.PlanJourney("Airport", "Gotri")
	require.NoError(t, err)
	assert.Empty(t, journeys)
}

func TestPlanJourneyValidation(t *testing.T) {
	p, _ := plannerFixture(t)

	_, err := p.PlanJourney("", "Gotri")
	assert.Error(t, err)

	_, err = p.PlanJourney("Station", "")
	assert.Error(t, err)

	_, err = p.PlanJourney("Station", "Station")
	assert.Error(t, err)
}

func TestPlannerRoute(t *testing.T) {
	p, _ := plannerFixture(t)

	detail, err := p.Route("1")
	require.NoError(t, err)
	assert.Equal(t, "Station - Gotri", detail.Route.Name)
	require.Len(t, detail.Stops, 3)
	assert.Equal(t, "Station", detail.Stops[0].Name)
	assert.Equal(t, "Gotri", detail.Stops[2].Name)

	_, err = p.Route("99")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
