package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"khoj.dev/citybus"
	"khoj.dev/citybus/config"
)

var routesCmd = &cobra.Command{
	Use:   "routes [number]",
	Short: "List routes, or show one route with its stops",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoutes,
}

func runRoutes(cmd *cobra.Command, args []string) error {
	s, err := openStorage(config.Load())
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		detail, err := citybus.NewPlanner(s).Route(args[0])
		if err != nil {
			return err
		}

		r := detail.Route
		fmt.Printf("Route %s: %s\n", r.RouteNumber, r.Name)
		if r.FirstBus.Valid {
			fmt.Printf("  First bus %s, last bus %s\n", r.FirstBus.String, r.LastBus.String)
		}
		if r.Frequency.Valid {
			fmt.Printf("  Every %s\n", r.Frequency.String)
		}
		if r.Distance.Valid {
			fmt.Printf("  %.1f km\n", r.Distance.Float64)
		}
		fmt.Println("  Stops:")
		for i, st := range detail.Stops {
			fmt.Printf("  %2d. %s\n", i+1, st.Name)
		}
		return nil
	}

	routes, err := s.Routes()
	if err != nil {
		return err
	}
	for _, r := range routes {
		fmt.Printf("%-6s %s\n", r.RouteNumber, r.Name)
	}
	return nil
}
