package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveEndpoints(t *testing.T) {
	trip := []TimePair{{Departure: "06:00", Arrival: "06:20"}}

	for _, tc := range []struct {
		name          string
		blocks        []ScheduleBlock
		viaStops      []string
		expectedStart string
		expectedEnd   string
	}{
		{
			"nothing at all",
			nil,
			nil,
			"Station", "Station",
		},
		{
			"via stops only",
			nil,
			[]string{"A", "B"},
			"Station", "B",
		},
		{
			"single block",
			[]ScheduleBlock{{From: "Station", To: "Airport", Times: trip}},
			nil,
			"Station", "Airport",
		},
		{
			"first destination wins",
			[]ScheduleBlock{
				{From: "Station", To: "Airport", Times: trip},
				{From: "Station", To: "Harbor", Times: trip},
			},
			nil,
			"Station", "Airport",
		},
		{
			"last via stop matching a known destination overrides",
			[]ScheduleBlock{
				{From: "Station", To: "Airport", Times: trip},
				{From: "Station", To: "Harbor", Times: trip},
			},
			[]string{"A", "Harbor"},
			"Station", "Harbor",
		},
		{
			"unknown last via stop does not override a confirmed destination",
			[]ScheduleBlock{{From: "Station", To: "Airport", Times: trip}},
			[]string{"A", "Nowhere"},
			"Station", "Airport",
		},
		{
			"unknown last via stop overrides an unconfirmed destination",
			[]ScheduleBlock{{From: "Station", To: "", Times: trip}},
			[]string{"A", "B"},
			"Station", "B",
		},
		{
			"last via stop equal to start point is ignored",
			[]ScheduleBlock{{From: "Station", To: "Airport", Times: trip}},
			[]string{"A", "Station"},
			"Station", "Airport",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			start, end := ResolveEndpoints(tc.blocks, tc.viaStops)
			assert.Equal(t, tc.expectedStart, start)
			assert.Equal(t, tc.expectedEnd, end)
		})
	}
}
