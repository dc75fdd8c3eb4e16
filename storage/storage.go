package storage

import (
	"errors"

	"khoj.dev/citybus/model"
)

// ErrNotFound is returned by lookups that match nothing.
var ErrNotFound = errors.New("not found")

// Storage persists the city bus data set: routes, stops, and each
// route's ordered stop list.
type Storage interface {
	// Writes a route record. If a route with the same route_number
	// exists, its ingestion-owned columns (name, start_point,
	// end_point, first_bus, last_bus) are updated in place and seeded
	// metadata is left alone. Returns the id of the surviving row.
	UpsertRoute(route *model.Route) (int64, error)

	// Merges seed metadata into a route, creating it when absent.
	// Null-valued fields leave the stored values untouched.
	MergeRouteMetadata(route *model.Route) (int64, error)

	// Looks a stop up by exact name, creating it with the given
	// values when absent. Existing stops are returned unchanged.
	FindOrCreateStop(stop *model.Stop) (int64, error)

	// Writes a stop keyed by exact name, overwriting name_gu and
	// coordinates when the stop already exists.
	UpsertStop(stop *model.Stop) (int64, error)

	// Atomically replaces the ordered stop list of a route. stop_order
	// is assigned 1-based from the slice order.
	ReplaceRouteStops(routeID int64, stopIDs []int64) error

	// Routes lists all routes ordered by route number.
	Routes() ([]*model.Route, error)

	// RouteByNumber returns the route with the given route_number, or
	// ErrNotFound.
	RouteByNumber(number string) (*model.Route, error)

	// RouteStops returns a route's stops in stop_order.
	RouteStops(routeID int64) ([]*model.Stop, error)

	// StopByName returns the stop with the given exact name, or
	// ErrNotFound.
	StopByName(name string) (*model.Stop, error)

	// RoutesBetween lists routes whose ordered stop list contains a
	// stop named from strictly before a stop named to.
	RoutesBetween(from, to string) ([]*model.Route, error)

	Close() error
}
