package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"khoj.dev/citybus"
	"khoj.dev/citybus/config"
)

var planCmd = &cobra.Command{
	Use:   "plan <from> <to>",
	Short: "Find routes between two stops",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	s, err := openStorage(config.Load())
	if err != nil {
		return err
	}
	defer s.Close()

	journeys, err := citybus.NewPlanner(s).PlanJourney(args[0], args[1])
	if err != nil {
		return err
	}

	if len(journeys) == 0 {
		fmt.Printf("No direct routes from %s to %s\n", args[0], args[1])
		return nil
	}

	for _, j := range journeys {
		r := j.Route
		fmt.Printf("Route %s: %s\n", r.RouteNumber, r.Name)
		if r.FirstBus.Valid {
			fmt.Printf("  First bus %s, last bus %s\n", r.FirstBus.String, r.LastBus.String)
		}
		if j.Fare > 0 {
			fmt.Printf("  Fare approx Rs %.0f\n", j.Fare)
		}
	}
	return nil
}
