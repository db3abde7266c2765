// Package flightapi provides a journey provider backed by a flat flights feed.
// It fetches every published flight from an upstream API (or a local file in
// the same format) and plans multi-leg journeys over them.
package flightapi

import (
	"context"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// ProviderName is the identifier used in logs.
const ProviderName = "flightapi"

// Config holds the provider settings.
type Config struct {
	// MaxFlights is the maximum number of legs per journey
	MaxFlights int
}

// Provider implements domain.JourneyFinder on top of a Source.
type Provider struct {
	source     Source
	maxFlights int
}

// NewProvider creates a Provider reading from source.
// If cfg is nil or MaxFlights is not positive, DefaultMaxFlights is used.
func NewProvider(source Source, cfg *Config) *Provider {
	maxFlights := DefaultMaxFlights
	if cfg != nil && cfg.MaxFlights > 0 {
		maxFlights = cfg.MaxFlights
	}
	return &Provider{
		source:     source,
		maxFlights: maxFlights,
	}
}

// Name returns the provider's identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// FindJourneys implements domain.JourneyFinder.FindJourneys.
// The flight feed is fetched on every call.
func (p *Provider) FindJourneys(ctx context.Context, query domain.JourneyQuery) (domain.Journeys, error) {
	flights, err := p.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	return newPlanner(flights, p.maxFlights).plan(query)
}

// Ensure Provider implements domain.JourneyFinder at compile time.
var _ domain.JourneyFinder = (*Provider)(nil)
