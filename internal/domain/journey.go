package domain

// Transport identifies the carrier operating a flight.
type Transport struct {
	// FlightCarrier is the airline code (e.g., "AV")
	FlightCarrier string `json:"flightCarrier"`

	// FlightNumber is the carrier's flight number (e.g., "8020")
	FlightNumber string `json:"flightNumber"`
}

// Flight is a single direct leg between two airports.
type Flight struct {
	Transport   Transport `json:"transport"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
}

// Journey is an itinerary of one or more consecutive flights.
type Journey struct {
	// Origin is the departure airport of the first flight
	Origin string `json:"origin"`

	// Destination is the arrival airport of the last flight
	Destination string `json:"destination"`

	// Price is the sum of all flight prices
	Price float64 `json:"price"`

	// Flights lists the legs in travel order
	Flights []Flight `json:"flights"`
}

// Journeys is the payload returned by a successful search.
// The request pipeline forwards it to the caller untouched.
type Journeys []Journey

// NewJourney builds a journey from consecutive legs.
// The caller guarantees legs is non-empty and connected.
func NewJourney(legs []Flight) Journey {
	flights := make([]Flight, len(legs))
	copy(flights, legs)

	var total float64
	for _, f := range flights {
		total += f.Price
	}

	return Journey{
		Origin:      flights[0].Origin,
		Destination: flights[len(flights)-1].Destination,
		Price:       total,
		Flights:     flights,
	}
}
