// Package mock provides test doubles for the journey search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, panics, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// Finder is a configurable implementation of domain.JourneyFinder.
type Finder struct {
	journeys   domain.Journeys
	err        error
	panicValue interface{}
	delay      time.Duration

	mu        sync.Mutex
	callCount int
	queries   []domain.JourneyQuery
}

// NewFinder creates a finder that returns no journeys and no error.
// It is configured using the builder methods.
func NewFinder() *Finder {
	return &Finder{}
}

// WithJourneys configures the finder to return the given journeys.
func (f *Finder) WithJourneys(journeys domain.Journeys) *Finder {
	f.journeys = journeys
	return f
}

// WithError configures the finder to return the given error.
func (f *Finder) WithError(err error) *Finder {
	f.err = err
	return f
}

// WithPanic configures the finder to panic with v.
func (f *Finder) WithPanic(v interface{}) *Finder {
	f.panicValue = v
	return f
}

// WithDelay configures the finder to wait the given duration before responding.
func (f *Finder) WithDelay(d time.Duration) *Finder {
	f.delay = d
	return f
}

// FindJourneys implements domain.JourneyFinder.FindJourneys.
// It records the query, honours ctx during the delay, then panics,
// fails or returns the configured journeys.
func (f *Finder) FindJourneys(ctx context.Context, query domain.JourneyQuery) (domain.Journeys, error) {
	f.mu.Lock()
	f.callCount++
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	if f.panicValue != nil {
		panic(f.panicValue)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.journeys, nil
}

// CallCount returns the number of times FindJourneys was called.
func (f *Finder) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

// Queries returns a copy of every query received, in call order.
func (f *Finder) Queries() []domain.JourneyQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.JourneyQuery, len(f.queries))
	copy(out, f.queries)
	return out
}

// Reset clears the recorded calls.
func (f *Finder) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount = 0
	f.queries = nil
}

// Ensure Finder implements domain.JourneyFinder at compile time.
var _ domain.JourneyFinder = (*Finder)(nil)

// SampleJourneys returns count direct journeys from origin to destination,
// with prices rising by 100 from 100.
func SampleJourneys(origin, destination string, count int) domain.Journeys {
	journeys := make(domain.Journeys, count)
	for i := 0; i < count; i++ {
		journeys[i] = domain.NewJourney([]domain.Flight{{
			Transport: domain.Transport{
				FlightCarrier: "CO",
				FlightNumber:  fmt.Sprintf("%d", 8000+i),
			},
			Origin:      origin,
			Destination: destination,
			Price:       float64(100 * (i + 1)),
		}})
	}
	return journeys
}
