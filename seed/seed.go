// Package seed loads the static city data set the route workbook cannot
// provide: stop coordinates, Gujarati names, and route metadata such as
// distance, frequency and fare.
package seed

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spkg/bom"

	"khoj.dev/citybus/model"
	"khoj.dev/citybus/storage"
)

type StopCSV struct {
	Name      string  `csv:"name"`
	NameGu    string  `csv:"name_gu"`
	Latitude  float64 `csv:"latitude"`
	Longitude float64 `csv:"longitude"`
}

type RouteCSV struct {
	RouteNumber   string  `csv:"route_number"`
	Name          string  `csv:"name"`
	NameGu        string  `csv:"name_gu"`
	StartPoint    string  `csv:"start_point"`
	EndPoint      string  `csv:"end_point"`
	Distance      float64 `csv:"distance"`
	EstimatedTime int64   `csv:"estimated_time"`
	FirstBus      string  `csv:"first_bus"`
	LastBus       string  `csv:"last_bus"`
	Frequency     string  `csv:"frequency"`
	Fare          float64 `csv:"fare"`
	Color         string  `csv:"color"`
	Stops         string  `csv:"stops"` // ordered stop names, | separated
}

// LoadStops upserts stops from a seed CSV, filling in the coordinates
// and Gujarati names that workbook ingestion leaves at their defaults.
func LoadStops(s storage.Storage, data io.Reader) (int, error) {
	stopCsv := []*StopCSV{}
	if err := gocsv.Unmarshal(bom.NewReader(data), &stopCsv); err != nil {
		return 0, fmt.Errorf("unmarshaling stops csv: %w", err)
	}

	for i, st := range stopCsv {
		name := strings.TrimSpace(st.Name)
		if name == "" {
			return i, errors.Errorf("stop row %d has no name", i+1)
		}

		stop := &model.Stop{
			Name:      name,
			Latitude:  st.Latitude,
			Longitude: st.Longitude,
		}
		if st.NameGu != "" {
			stop.NameGu = sql.NullString{String: st.NameGu, Valid: true}
		}

		if _, err := s.UpsertStop(stop); err != nil {
			return i, errors.Wrapf(err, "upserting stop (row %d)", i+1)
		}
	}

	return len(stopCsv), nil
}

// LoadRoutes merges route metadata from a seed CSV. A non-empty stops
// column replaces the route's ordered stop list as well.
func LoadRoutes(s storage.Storage, data io.Reader) (int, error) {
	routeCsv := []*RouteCSV{}
	if err := gocsv.Unmarshal(bom.NewReader(data), &routeCsv); err != nil {
		return 0, fmt.Errorf("unmarshaling routes csv: %w", err)
	}

	for i, rc := range routeCsv {
		number := strings.TrimSpace(rc.RouteNumber)
		if number == "" {
			return i, errors.Errorf("route row %d has no route_number", i+1)
		}

		route := &model.Route{
			RouteNumber: number,
			Name:        rc.Name,
			StartPoint:  rc.StartPoint,
			EndPoint:    rc.EndPoint,
		}
		if rc.NameGu != "" {
			route.NameGu = sql.NullString{String: rc.NameGu, Valid: true}
		}
		if rc.Distance != 0 {
			route.Distance = sql.NullFloat64{Float64: rc.Distance, Valid: true}
		}
		if rc.EstimatedTime != 0 {
			route.EstimatedTime = sql.NullInt64{Int64: rc.EstimatedTime, Valid: true}
		}
		if rc.FirstBus != "" {
			route.FirstBus = sql.NullString{String: rc.FirstBus, Valid: true}
		}
		if rc.LastBus != "" {
			route.LastBus = sql.NullString{String: rc.LastBus, Valid: true}
		}
		if rc.Frequency != "" {
			route.Frequency = sql.NullString{String: rc.Frequency, Valid: true}
		}
		if rc.Fare != 0 {
			route.Fare = sql.NullFloat64{Float64: rc.Fare, Valid: true}
		}
		if rc.Color != "" {
			route.Color = sql.NullString{String: rc.Color, Valid: true}
		}

		routeID, err := s.MergeRouteMetadata(route)
		if err != nil {
			return i, errors.Wrapf(err, "merging route (row %d)", i+1)
		}

		if rc.Stops == "" {
			continue
		}

		var stopIDs []int64
		for _, name := range strings.Split(rc.Stops, "|") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			id, err := s.FindOrCreateStop(&model.Stop{Name: name})
			if err != nil {
				return i, errors.Wrapf(err, "creating stop %q (row %d)", name, i+1)
			}
			stopIDs = append(stopIDs, id)
		}
		if err := s.ReplaceRouteStops(routeID, stopIDs); err != nil {
			return i, errors.Wrapf(err, "replacing stops of route %s", number)
		}
	}

	return len(routeCsv), nil
}

// LoadDir loads stops.csv and routes.csv from a directory. Either file
// may be absent. Stops load first so that route stop lists can reference
// them.
func LoadDir(s storage.Storage, dir string) (stops, routes int, err error) {
	stops, err = loadFile(dir, "stops.csv", func(r io.Reader) (int, error) {
		return LoadStops(s, r)
	})
	if err != nil {
		return stops, 0, err
	}

	routes, err = loadFile(dir, "routes.csv", func(r io.Reader) (int, error) {
		return LoadRoutes(s, r)
	})
	return stops, routes, err
}

func loadFile(dir, name string, load func(io.Reader) (int, error)) (int, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	n, err := load(f)
	if err != nil {
		return n, fmt.Errorf("loading %s: %w", name, err)
	}
	return n, nil
}
