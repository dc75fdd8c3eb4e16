package model

import (
	"database/sql"
)

// Holds all external facing types for the city bus data set.

// Route is one bus route as persisted in bus_routes. RouteNumber is the
// unique key; repeated imports upsert on it. Fields the workbook cannot
// provide (distance, fare, frequency, ...) stay NULL until seeded.
type Route struct {
	ID            int64
	RouteNumber   string
	Name          string
	NameGu        sql.NullString
	StartPoint    string
	EndPoint      string
	Distance      sql.NullFloat64 // kilometers
	EstimatedTime sql.NullInt64   // minutes
	FirstBus      sql.NullString  // "HH:MM"
	LastBus       sql.NullString  // "HH:MM"
	Frequency     sql.NullString
	Fare          sql.NullFloat64 // rupees, general category
	Color         sql.NullString
}

// Stop is one bus stop, unique by exact name. Stops created during
// workbook ingestion carry 0,0 coordinates until seed data fills them in.
type Stop struct {
	ID        int64
	Name      string
	NameGu    sql.NullString
	Latitude  float64
	Longitude float64
}

// RouteStop ties a stop to a route at a 1-based position in the route's
// ordered stop list.
type RouteStop struct {
	RouteID   int64
	StopID    int64
	StopOrder int
}
