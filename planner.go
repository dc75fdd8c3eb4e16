package citybus

import (
	"fmt"

	"khoj.dev/citybus/model"
	"khoj.dev/citybus/storage"
)

// Planner answers stop-to-stop queries against the persisted route data.
type Planner struct {
	storage storage.Storage
}

func NewPlanner(s storage.Storage) *Planner {
	return &Planner{storage: s}
}

// Journey is one candidate route for a trip between two stops.
type Journey struct {
	Route *model.Route

	// Fare is the general-category estimate for riding the full route,
	// 0 when the route's distance is unknown.
	Fare float64
}

// PlanJourney returns the routes whose ordered stop list passes the from
// stop strictly before the to stop. Stops are matched by exact name.
func (p *Planner) PlanJourney(from, to string) ([]Journey, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("both stops are required")
	}
	if from == to {
		return nil, fmt.Errorf("from and to stops must differ")
	}

	routes, err := p.storage.RoutesBetween(from, to)
	if err != nil {
		return nil, fmt.Errorf("finding routes: %w", err)
	}

	journeys := make([]Journey, 0, len(routes))
	for _, r := range routes {
		j := Journey{Route: r}
		if r.Distance.Valid {
			j.Fare = CalculateFare(r.Distance.Float64, CategoryGeneral)
		}
		journeys = append(journeys, j)
	}

	return journeys, nil
}

// RouteDetail is a route together with its ordered stop list.
type RouteDetail struct {
	Route *model.Route
	Stops []*model.Stop
}

// Route returns a single route with its stops, looked up by route
// number.
func (p *Planner) Route(number string) (*RouteDetail, error) {
	route, err := p.storage.RouteByNumber(number)
	if err != nil {
		return nil, err
	}

	stops, err := p.storage.RouteStops(route.ID)
	if err != nil {
		return nil, fmt.Errorf("listing stops of route %s: %w", number, err)
	}

	return &RouteDetail{Route: route, Stops: stops}, nil
}
