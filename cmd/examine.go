package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"khoj.dev/citybus/config"
	"khoj.dev/citybus/workbook"
)

var examineRows int

var examineCmd = &cobra.Command{
	Use:   "examine [workbook]",
	Short: "Dump worksheet names and leading rows of a workbook",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExamine,
}

func init() {
	examineCmd.Flags().IntVarP(&examineRows, "rows", "", 10, "rows to print per sheet")
}

func runExamine(cmd *cobra.Command, args []string) error {
	path := config.Load().WorkbookPath
	if len(args) == 1 {
		path = args[0]
	}

	sheets, err := workbook.NewExcelReader(path).Worksheets()
	if err != nil {
		return err
	}

	for _, ws := range sheets {
		fmt.Printf("Sheet: %s (%d rows)\n", ws.Name, len(ws.Rows))
		for i, row := range ws.Rows {
			if i >= examineRows {
				fmt.Println("  ...")
				break
			}
			fmt.Printf("  %s\n", formatRow(row))
		}
		fmt.Println()
	}

	return nil
}

func formatRow(row []workbook.Cell) string {
	parts := make([]string, len(row))
	for i, c := range row {
		switch c.Kind {
		case workbook.CellText:
			parts[i] = fmt.Sprintf("%q", c.Text)
		case workbook.CellNumber:
			parts[i] = strconv.FormatFloat(c.Number, 'f', -1, 64)
		default:
			parts[i] = "-"
		}
	}
	return strings.Join(parts, " ")
}
