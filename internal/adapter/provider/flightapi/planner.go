package flightapi

import (
	"sort"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// DefaultMaxFlights is the default upper bound on legs per journey.
const DefaultMaxFlights = 4

// planner enumerates journeys over a fixed set of flights.
type planner struct {
	departures map[string][]domain.Flight
	arrivals   map[string]bool
	maxFlights int
}

// newPlanner indexes flights by departure airport.
func newPlanner(flights []domain.Flight, maxFlights int) *planner {
	if maxFlights <= 0 {
		maxFlights = DefaultMaxFlights
	}

	p := &planner{
		departures: make(map[string][]domain.Flight),
		arrivals:   make(map[string]bool),
		maxFlights: maxFlights,
	}
	for _, f := range flights {
		p.departures[f.Origin] = append(p.departures[f.Origin], f)
		p.arrivals[f.Destination] = true
	}
	return p
}

// plan returns all journeys for q, cheapest first.
func (p *planner) plan(q domain.JourneyQuery) (domain.Journeys, error) {
	origin, destination := q.Origin().String(), q.Destination().String()

	if len(p.departures[origin]) == 0 {
		return nil, domain.NewFlightNotFoundError(q.Origin())
	}
	if !p.arrivals[destination] {
		return nil, domain.NewFlightNotFoundError(q.Destination())
	}

	var journeys domain.Journeys
	visited := map[string]bool{origin: true}
	legs := make([]domain.Flight, 0, p.maxFlights)

	var walk func(at string)
	walk = func(at string) {
		for _, f := range p.departures[at] {
			if visited[f.Destination] {
				continue
			}

			legs = append(legs, f)
			switch {
			case f.Destination == destination:
				journeys = append(journeys, domain.NewJourney(legs))
			case len(legs) < p.maxFlights:
				visited[f.Destination] = true
				walk(f.Destination)
				visited[f.Destination] = false
			}
			legs = legs[:len(legs)-1]
		}
	}
	walk(origin)

	if len(journeys) == 0 {
		return nil, domain.NewJourneysNotFoundError(q)
	}

	sort.SliceStable(journeys, func(i, j int) bool {
		if journeys[i].Price != journeys[j].Price {
			return journeys[i].Price < journeys[j].Price
		}
		return len(journeys[i].Flights) < len(journeys[j].Flights)
	})

	return journeys, nil
}
