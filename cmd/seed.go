package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"khoj.dev/citybus/config"
	"khoj.dev/citybus/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed [dir]",
	Short: "Load seed stop and route data from CSV files",
	Long:  "Loads stops.csv and routes.csv from a directory, filling in coordinates and route metadata the workbook lacks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	dir := "seed-data"
	if len(args) == 1 {
		dir = args[0]
	}

	s, err := openStorage(config.Load())
	if err != nil {
		return err
	}
	defer s.Close()

	stops, routes, err := seed.LoadDir(s, dir)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d stops and %d routes from %s\n", stops, routes, dir)
	return nil
}
