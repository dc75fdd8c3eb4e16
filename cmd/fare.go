package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"khoj.dev/citybus"
)

var fareCategory string

var fareCmd = &cobra.Command{
	Use:   "fare <distance-km>",
	Short: "Calculate the fare for a journey distance",
	Args:  cobra.ExactArgs(1),
	RunE:  runFare,
}

func init() {
	fareCmd.Flags().StringVarP(&fareCategory, "category", "c", citybus.CategoryGeneral, "passenger category")
}

func runFare(cmd *cobra.Command, args []string) error {
	distance, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("'%s' is not a distance in km", args[0])
	}

	fc := citybus.FareCategoryByName(fareCategory)
	if fc == nil {
		names := make([]string, len(citybus.FareCategories))
		for i, c := range citybus.FareCategories {
			names[i] = c.Category
		}
		return fmt.Errorf("unknown category %q, pick one of %v", fareCategory, names)
	}

	fare := citybus.CalculateFare(distance, fc.Category)
	fmt.Printf("%s fare for %.1f km: Rs %.0f\n", fc.Category, distance, fare)
	if fc.MonthlyPass > 0 {
		fmt.Printf("Monthly pass: Rs %.0f\n", fc.MonthlyPass)
	}
	return nil
}
