// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// ProjectRoot returns the repository root directory.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// FlightsFixturePath returns the path of the bundled sample flights document.
func FlightsFixturePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(ProjectRoot(t), "docs", "flights-mock", "flights.json")
}

// LoadFlightsFixture loads the bundled sample flights document.
func LoadFlightsFixture(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile(FlightsFixturePath(t))
	if err != nil {
		t.Fatalf("Failed to load flights fixture: %v", err)
	}
	return data
}

// Upstream is a fake flights feed served over HTTP.
type Upstream struct {
	*httptest.Server
	hits atomic.Int64
}

// NewUpstream starts a server answering every request with status and body.
// It is closed when the test finishes.
func NewUpstream(t *testing.T, status int, body []byte) *Upstream {
	t.Helper()

	u := &Upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(u.Close)
	return u
}

// Hits returns the number of requests the upstream has received.
func (u *Upstream) Hits() int {
	return int(u.hits.Load())
}

// Flight builds a domain flight for table tests.
func Flight(origin, destination, carrier, number string, price float64) domain.Flight {
	return domain.Flight{
		Transport: domain.Transport{
			FlightCarrier: carrier,
			FlightNumber:  number,
		},
		Origin:      origin,
		Destination: destination,
		Price:       price,
	}
}

// Query builds a validated query, failing the test if the codes are rejected.
func Query(t *testing.T, origin, destination string) domain.JourneyQuery {
	t.Helper()

	q, err := domain.NewJourneyQuery(origin, destination)
	if err != nil {
		t.Fatalf("Invalid query %s-%s: %v", origin, destination, err)
	}
	return q
}
