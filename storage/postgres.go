package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"khoj.dev/citybus/model"
)

type PSQLStorage struct {
	db *sql.DB
}

const psqlSchema = `
CREATE TABLE IF NOT EXISTS bus_routes (
    id BIGSERIAL PRIMARY KEY,
    route_number TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    name_gu TEXT,
    start_point TEXT NOT NULL,
    end_point TEXT NOT NULL,
    distance DOUBLE PRECISION,
    estimated_time BIGINT,
    first_bus TEXT,
    last_bus TEXT,
    frequency TEXT,
    fare DOUBLE PRECISION,
    color TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bus_stops (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    name_gu TEXT,
    latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS route_stops (
    id BIGSERIAL PRIMARY KEY,
    route_id BIGINT NOT NULL REFERENCES bus_routes (id),
    stop_id BIGINT NOT NULL REFERENCES bus_stops (id),
    stop_order INTEGER NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS route_stops_route_idx ON route_stops (route_id, stop_order);
`

// NewPSQLStorage creates Postgres backed storage using the provided
// connection string.
//
// If clearDB is true, the bus tables are dropped on startup. You
// probably only want this for testing.
func NewPSQLStorage(connStr string, clearDB bool) (*PSQLStorage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if clearDB {
		_, err = db.Exec(`
DROP TABLE IF EXISTS route_stops;
DROP TABLE IF EXISTS bus_stops;
DROP TABLE IF EXISTS bus_routes;`)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("clearing database: %w", err)
		}
	}

	if _, err := db.Exec(psqlSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &PSQLStorage{db: db}, nil
}

func (s *PSQLStorage) UpsertRoute(route *model.Route) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
INSERT INTO bus_routes (route_number, name, start_point, end_point, first_bus, last_bus)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (route_number) DO UPDATE SET
    name = excluded.name,
    start_point = excluded.start_point,
    end_point = excluded.end_point,
    first_bus = excluded.first_bus,
    last_bus = excluded.last_bus,
    updated_at = now()
RETURNING id`,
		route.RouteNumber,
		route.Name,
		route.StartPoint,
		route.EndPoint,
		route.FirstBus,
		route.LastBus,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting route %s: %w", route.RouteNumber, err)
	}
	return id, nil
}

func (s *PSQLStorage) MergeRouteMetadata(route *model.Route) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
INSERT INTO bus_routes (
    route_number, name, name_gu, start_point, end_point,
    distance, estimated_time, first_bus, last_bus, frequency, fare, color
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (route_number) DO UPDATE SET
    name_gu = COALESCE(excluded.name_gu, bus_routes.name_gu),
    distance = COALESCE(excluded.distance, bus_routes.distance),
    estimated_time = COALESCE(excluded.estimated_time, bus_routes.estimated_time),
    frequency = COALESCE(excluded.frequency, bus_routes.frequency),
    fare = COALESCE(excluded.fare, bus_routes.fare),
    color = COALESCE(excluded.color, bus_routes.color),
    updated_at = now()
RETURNING id`,
		route.RouteNumber,
		route.Name,
		route.NameGu,
		route.StartPoint,
		route.EndPoint,
		route.Distance,
		route.EstimatedTime,
		route.FirstBus,
		route.LastBus,
		route.Frequency,
		route.Fare,
		route.Color,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("merging route %s: %w", route.RouteNumber, err)
	}
	return id, nil
}

func (s *PSQLStorage) FindOrCreateStop(stop *model.Stop) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM bus_stops WHERE name = $1`, stop.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("looking up stop %q: %w", stop.Name, err)
	}

	err = s.db.QueryRow(`
INSERT INTO bus_stops (name, name_gu, latitude, longitude)
VALUES ($1, $2, $3, $4)
RETURNING id`,
		stop.Name, stop.NameGu, stop.Latitude, stop.Longitude).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("creating stop %q: %w", stop.Name, err)
	}
	return id, nil
}

func (s *PSQLStorage) UpsertStop(stop *model.Stop) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
INSERT INTO bus_stops (name, name_gu, latitude, longitude)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE SET
    name_gu = excluded.name_gu,
    latitude = excluded.latitude,
    longitude = excluded.longitude,
    updated_at = now()
RETURNING id`,
		stop.Name, stop.NameGu, stop.Latitude, stop.Longitude).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting stop %q: %w", stop.Name, err)
	}
	return id, nil
}

// ReplaceRouteStops deletes and re-inserts a route's associations in one
// transaction, so readers never see a route with zero stops.
func (s *PSQLStorage) ReplaceRouteStops(routeID int64, stopIDs []int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM route_stops WHERE route_id = $1`, routeID); err != nil {
		return fmt.Errorf("deleting route stops: %w", err)
	}

	for i, stopID := range stopIDs {
		_, err := tx.Exec(`
INSERT INTO route_stops (route_id, stop_id, stop_order)
VALUES ($1, $2, $3)`,
			routeID, stopID, i+1)
		if err != nil {
			return fmt.Errorf("inserting route stop %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func (s *PSQLStorage) Routes() ([]*model.Route, error) {
	rows, err := s.db.Query(`SELECT ` + routeColumns + ` FROM bus_routes ORDER BY route_number`)
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	defer rows.Close()

	var routes []*model.Route
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (s *PSQLStorage) RouteByNumber(number string) (*model.Route, error) {
	row := s.db.QueryRow(`SELECT `+routeColumns+` FROM bus_routes WHERE route_number = $1`, number)
	r, err := scanRoute(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching route %s: %w", number, err)
	}
	return r, nil
}

func (s *PSQLStorage) RouteStops(routeID int64) ([]*model.Stop, error) {
	rows, err := s.db.Query(`
SELECT st.id, st.name, st.name_gu, st.latitude, st.longitude
FROM route_stops rs
JOIN bus_stops st ON st.id = rs.stop_id
WHERE rs.route_id = $1
ORDER BY rs.stop_order`, routeID)
	if err != nil {
		return nil, fmt.Errorf("listing route stops: %w", err)
	}
	defer rows.Close()

	var stops []*model.Stop
	for rows.Next() {
		st, err := scanStop(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning stop: %w", err)
		}
		stops = append(stops, st)
	}
	return stops, rows.Err()
}

func (s *PSQLStorage) StopByName(name string) (*model.Stop, error) {
	row := s.db.QueryRow(`
SELECT id, name, name_gu, latitude, longitude
FROM bus_stops
WHERE name = $1`, name)
	st, err := scanStop(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching stop %q: %w", name, err)
	}
	return st, nil
}

func (s *PSQLStorage) RoutesBetween(from, to string) ([]*model.Route, error) {
	rows, err := s.db.Query(`
SELECT r.id, r.route_number, r.name, r.name_gu, r.start_point, r.end_point,
    r.distance, r.estimated_time, r.first_bus, r.last_bus, r.frequency, r.fare, r.color
FROM bus_routes r
JOIN route_stops a ON a.route_id = r.id
JOIN bus_stops sa ON sa.id = a.stop_id
JOIN route_stops b ON b.route_id = r.id
JOIN bus_stops sb ON sb.id = b.stop_id
WHERE sa.name = $1 AND sb.name = $2 AND a.stop_order < b.stop_order
ORDER BY r.route_number`, from, to)
	if err != nil {
		return nil, fmt.Errorf("finding routes between stops: %w", err)
	}
	defer rows.Close()

	var routes []*model.Route
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}

func (s *PSQLStorage) Close() error {
	return s.db.Close()
}
