package citybus

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"khoj.dev/citybus/model"
	"khoj.dev/citybus/parse"
	"khoj.dev/citybus/storage"
	"khoj.dev/citybus/workbook"
)

// Importer runs the workbook ingestion pipeline: a single pass over the
// worksheets, extracting route data and persisting it.
type Importer struct {
	// Logger receives per-worksheet progress and warnings. Defaults to
	// standard output.
	Logger *log.Logger

	storage storage.Storage
}

func NewImporter(s storage.Storage) *Importer {
	return &Importer{
		Logger:  log.New(os.Stdout, "", log.LstdFlags),
		storage: s,
	}
}

// Result sums per-worksheet outcomes. A skipped worksheet or a failed
// route number counts one error; each persisted route counts one
// success.
type Result struct {
	Success int
	Errors  int
}

// Run processes every worksheet of the workbook in declared order.
// Extraction and persistence failures are logged and counted, never
// propagated; only a failure to read the workbook itself aborts the run.
func (im *Importer) Run(reader workbook.Reader) (Result, error) {
	sheets, err := reader.Worksheets()
	if err != nil {
		return Result{}, fmt.Errorf("reading workbook: %w", err)
	}

	var total Result
	for _, ws := range sheets {
		res := im.importWorksheet(ws)
		total.Success += res.Success
		total.Errors += res.Errors
	}

	return total, nil
}

func (im *Importer) importWorksheet(ws workbook.Worksheet) Result {
	im.Logger.Printf("processing worksheet %q", ws.Name)

	sheet, err := parse.ParseWorksheet(ws)
	if err != nil {
		im.Logger.Printf("  skipping: %v", err)
		return Result{Errors: 1}
	}

	im.Logger.Printf("  %d via stop(s), %d schedule block(s)", len(sheet.ViaStops), len(sheet.Blocks))

	// One sheet can name several routes; they share stops and times but
	// persist independently, so one bad route number doesn't take down
	// its siblings.
	var res Result
	for _, number := range sheet.RouteNumbers {
		if err := im.importRoute(number, sheet); err != nil {
			im.Logger.Printf("  route %s: %v", number, err)
			res.Errors++
			continue
		}
		im.Logger.Printf("  imported route %s: %s - %s (%d stops)",
			number, sheet.StartPoint, sheet.EndPoint, len(sheet.Stops))
		res.Success++
	}

	return res
}

func (im *Importer) importRoute(number string, sheet *parse.RouteSheet) error {
	route := &model.Route{
		RouteNumber: number,
		Name:        fmt.Sprintf("%s - %s", sheet.StartPoint, sheet.EndPoint),
		StartPoint:  sheet.StartPoint,
		EndPoint:    sheet.EndPoint,
	}
	if sheet.FirstBus != "" {
		route.FirstBus = sql.NullString{String: sheet.FirstBus, Valid: true}
		route.LastBus = sql.NullString{String: sheet.LastBus, Valid: true}
	}

	routeID, err := im.storage.UpsertRoute(route)
	if err != nil {
		return errors.Wrap(err, "upserting route")
	}

	stopIDs := make([]int64, 0, len(sheet.Stops))
	for _, name := range sheet.Stops {
		// New stops get 0,0 coordinates until seed data fills them in.
		id, err := im.storage.FindOrCreateStop(&model.Stop{Name: name})
		if err != nil {
			// A failed stop is simply left out of the route.
			im.Logger.Printf("  stop %q: %v", name, err)
			continue
		}
		stopIDs = append(stopIDs, id)
	}

	if err := im.storage.ReplaceRouteStops(routeID, stopIDs); err != nil {
		return errors.Wrap(err, "replacing route stops")
	}

	return nil
}
