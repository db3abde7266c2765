// Package usecase contains the request orchestration for journey searches.
// It validates input, delegates to a journey provider, and maps every outcome
// to a status code and body.
package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// JourneySearchUseCase defines the journey search operation.
type JourneySearchUseCase interface {
	// HandleRequest validates the raw airport codes, runs the search, and
	// returns the response to send. It never returns a Go error: every
	// failure is already mapped to a status code.
	HandleRequest(ctx context.Context, origin, destination string) Response
}

// Response is the outcome of a single journey search request.
type Response struct {
	// StatusCode is the HTTP status to return
	StatusCode int

	// Journeys is the provider payload, set only on success
	Journeys domain.Journeys

	// Message is the plain-text body, set only on failure
	Message string

	// Kind is the failure classification, zero on success
	Kind domain.FailureKind
}

// Failed returns true if the response carries a failure.
func (r Response) Failed() bool {
	return r.Kind != 0
}

type journeySearchUseCase struct {
	finder domain.JourneyFinder
	log    zerolog.Logger
}

// NewJourneySearchUseCase creates a JourneySearchUseCase backed by finder.
func NewJourneySearchUseCase(finder domain.JourneyFinder, log zerolog.Logger) JourneySearchUseCase {
	return &journeySearchUseCase{
		finder: finder,
		log:    log,
	}
}

// HandleRequest implements JourneySearchUseCase.HandleRequest.
func (uc *journeySearchUseCase) HandleRequest(ctx context.Context, origin, destination string) Response {
	query, err := domain.NewJourneyQuery(origin, destination)
	if err != nil {
		return uc.fail(origin, destination, err)
	}

	uc.log.Info().
		Str("origin", origin).
		Str("destination", destination).
		Msg("Searching for journeys")

	journeys, err := uc.findJourneys(ctx, query)
	if err != nil {
		return uc.fail(origin, destination, err)
	}

	uc.log.Info().
		Str("origin", origin).
		Str("destination", destination).
		Int("journeys", len(journeys)).
		Msg("Journey search completed")

	return Response{
		StatusCode: http.StatusOK,
		Journeys:   journeys,
	}
}

// findJourneys calls the provider, converting a panic into an error.
func (uc *journeySearchUseCase) findJourneys(ctx context.Context, query domain.JourneyQuery) (journeys domain.Journeys, err error) {
	defer func() {
		if r := recover(); r != nil {
			journeys = nil
			err = fmt.Errorf("journey provider panic: %v", r)
		}
	}()

	return uc.finder.FindJourneys(ctx, query)
}

// fail logs err and builds the matching failure response.
func (uc *journeySearchUseCase) fail(origin, destination string, err error) Response {
	kind := domain.Classify(err)
	message := domain.FailureMessage(err)

	uc.log.Error().
		Err(err).
		Str("origin", origin).
		Str("destination", destination).
		Str("kind", kind.String()).
		Msg(message)

	return Response{
		StatusCode: StatusCode(kind),
		Message:    message,
		Kind:       kind,
	}
}

// StatusCode maps a failure kind to its HTTP status.
// Unknown kinds fall through to 500.
func StatusCode(kind domain.FailureKind) int {
	switch kind {
	case domain.InvalidQuery:
		return http.StatusBadRequest
	case domain.FlightNotFound, domain.JourneysNotFound:
		return http.StatusNotFound
	case domain.ProviderUnavailable:
		return http.StatusServiceUnavailable
	case domain.MalformedProviderResponse:
		return http.StatusInternalServerError
	case domain.UnexpectedFault:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Ensure journeySearchUseCase implements JourneySearchUseCase at compile time.
var _ JourneySearchUseCase = (*journeySearchUseCase)(nil)
