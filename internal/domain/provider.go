package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// JourneyFinder is the capability that computes journeys between two airports.
// Implementations must honour context cancellation and report failures as
// *ProviderError (or errors that Classify recognises).
type JourneyFinder interface {
	// FindJourneys returns every journey from the query's origin to its destination.
	FindJourneys(ctx context.Context, query JourneyQuery) (Journeys, error)
}
