package storage

import (
	"sort"

	"khoj.dev/citybus/model"
)

// In memory implementation of Storage below. Handy for tests.

type MemoryStorage struct {
	routes     map[string]*model.Route // keyed by route_number
	stops      map[string]*model.Stop  // keyed by name
	routeStops map[int64][]model.RouteStop

	nextRouteID int64
	nextStopID  int64
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		routes:     map[string]*model.Route{},
		stops:      map[string]*model.Stop{},
		routeStops: map[int64][]model.RouteStop{},
	}
}

func (s *MemoryStorage) UpsertRoute(route *model.Route) (int64, error) {
	if existing, ok := s.routes[route.RouteNumber]; ok {
		existing.Name = route.Name
		existing.StartPoint = route.StartPoint
		existing.EndPoint = route.EndPoint
		existing.FirstBus = route.FirstBus
		existing.LastBus = route.LastBus
		return existing.ID, nil
	}

	s.nextRouteID++
	r := *route
	r.ID = s.nextRouteID
	s.routes[r.RouteNumber] = &r
	return r.ID, nil
}

func (s *MemoryStorage) MergeRouteMetadata(route *model.Route) (int64, error) {
	existing, ok := s.routes[route.RouteNumber]
	if !ok {
		s.nextRouteID++
		r := *route
		r.ID = s.nextRouteID
		s.routes[r.RouteNumber] = &r
		return r.ID, nil
	}

	if route.NameGu.Valid {
		existing.NameGu = route.NameGu
	}
	if route.Distance.Valid {
		existing.Distance = route.Distance
	}
	if route.EstimatedTime.Valid {
		existing.EstimatedTime = route.EstimatedTime
	}
	if route.Frequency.Valid {
		existing.Frequency = route.Frequency
	}
	if route.Fare.Valid {
		existing.Fare = route.Fare
	}
	if route.Color.Valid {
		existing.Color = route.Color
	}
	return existing.ID, nil
}

func (s *MemoryStorage) FindOrCreateStop(stop *model.Stop) (int64, error) {
	if existing, ok := s.stops[stop.Name]; ok {
		return existing.ID, nil
	}

	s.nextStopID++
	st := *stop
	st.ID = s.nextStopID
	s.stops[st.Name] = &st
	return st.ID, nil
}

func (s *MemoryStorage) UpsertStop(stop *model.Stop) (int64, error) {
	if existing, ok := s.stops[stop.Name]; ok {
		existing.NameGu = stop.NameGu
		existing.Latitude = stop.Latitude
		existing.Longitude = stop.Longitude
		return existing.ID, nil
	}

	s.nextStopID++
	st := *stop
	st.ID = s.nextStopID
	s.stops[st.Name] = &st
	return st.ID, nil
}

func (s *MemoryStorage) ReplaceRouteStops(routeID int64, stopIDs []int64) error {
	assocs := make([]model.RouteStop, 0, len(stopIDs))
	for i, stopID := range stopIDs {
		assocs = append(assocs, model.RouteStop{
			RouteID:   routeID,
			StopID:    stopID,
			StopOrder: i + 1,
		})
	}
	s.routeStops[routeID] = assocs
	return nil
}

func (s *MemoryStorage) Routes() ([]*model.Route, error) {
	routes := make([]*model.Route, 0, len(s.routes))
	for _, r := range s.routes {
		c := *r
		routes = append(routes, &c)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].RouteNumber < routes[j].RouteNumber
	})
	return routes, nil
}

func (s *MemoryStorage) RouteByNumber(number string) (*model.Route, error) {
	r, ok := s.routes[number]
	if !ok {
		return nil, ErrNotFound
	}
	c := *r
	return &c, nil
}

func (s *MemoryStorage) RouteStops(routeID int64) ([]*model.Stop, error) {
	assocs := append([]model.RouteStop{}, s.routeStops[routeID]...)
	sort.Slice(assocs, func(i, j int) bool {
		return assocs[i].StopOrder < assocs[j].StopOrder
	})

	stops := make([]*model.Stop, 0, len(assocs))
	for _, a := range assocs {
		if st := s.stopByID(a.StopID); st != nil {
			c := *st
			stops = append(stops, &c)
		}
	}
	return stops, nil
}

func (s *MemoryStorage) StopByName(name string) (*model.Stop, error) {
	st, ok := s.stops[name]
	if !ok {
		return nil, ErrNotFound
	}
	c := *st
	return &c, nil
}

func (s *MemoryStorage) RoutesBetween(from, to string) ([]*model.Route, error) {
	all, err := s.Routes()
	if err != nil {
		return nil, err
	}

	var routes []*model.Route
	for _, r := range all {
		stops, err := s.RouteStops(r.ID)
		if err != nil {
			return nil, err
		}
		fromIdx, toIdx := -1, -1
		for i, st := range stops {
			if st.Name == from && fromIdx == -1 {
				fromIdx = i
			}
			if st.Name == to && toIdx == -1 {
				toIdx = i
			}
		}
		if fromIdx != -1 && toIdx != -1 && fromIdx < toIdx {
			routes = append(routes, r)
		}
	}
	return routes, nil
}

func (s *MemoryStorage) stopByID(id int64) *model.Stop {
	for _, st := range s.stops {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
