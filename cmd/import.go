package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"khoj.dev/citybus"
	"khoj.dev/citybus/config"
	"khoj.dev/citybus/workbook"
)

var importWorkbookPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import bus routes from the route workbook",
	Long:  "Reads the route workbook and writes routes, stops and stop orders to the database",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(
		&importWorkbookPath,
		"workbook",
		"",
		"",
		`workbook path (default from CITYBUS_WORKBOOK, or "bus routes.xlsx")`,
	)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	s, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	path := importWorkbookPath
	if path == "" {
		path = cfg.WorkbookPath
	}

	fmt.Printf("Reading workbook: %s\n\n", path)

	importer := citybus.NewImporter(s)
	result, err := importer.Run(workbook.NewExcelReader(path))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Import completed!")
	fmt.Printf("Successfully imported: %d routes\n", result.Success)
	fmt.Printf("Errors: %d\n", result.Errors)

	return nil
}
