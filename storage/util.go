package storage

import (
	"khoj.dev/citybus/model"
)

const routeColumns = `id, route_number, name, name_gu, start_point, end_point,
    distance, estimated_time, first_bus, last_bus, frequency, fare, color`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoute(row rowScanner) (*model.Route, error) {
	var r model.Route
	err := row.Scan(
		&r.ID,
		&r.RouteNumber,
		&r.Name,
		&r.NameGu,
		&r.StartPoint,
		&r.EndPoint,
		&r.Distance,
		&r.EstimatedTime,
		&r.FirstBus,
		&r.LastBus,
		&r.Frequency,
		&r.Fare,
		&r.Color,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanStop(row rowScanner) (*model.Stop, error) {
	var st model.Stop
	err := row.Scan(
		&st.ID,
		&st.Name,
		&st.NameGu,
		&st.Latitude,
		&st.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
