package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// FailureKind classifies every way a journey search can fail.
// Exactly one kind applies to a failed request.
type FailureKind int

// Failure kinds.
const (
	// InvalidQuery means the caller's input failed validation.
	InvalidQuery FailureKind = iota + 1
	// FlightNotFound means an endpoint airport has no flights at all.
	FlightNotFound
	// JourneysNotFound means both airports exist but no route connects them.
	JourneysNotFound
	// ProviderUnavailable means the provider could not be reached.
	ProviderUnavailable
	// MalformedProviderResponse means the provider returned data that could not be parsed.
	MalformedProviderResponse
	// UnexpectedFault covers every failure not classified above.
	UnexpectedFault
)

// String returns the snake_case name used in logs.
func (k FailureKind) String() string {
	switch k {
	case InvalidQuery:
		return "invalid_query"
	case FlightNotFound:
		return "flight_not_found"
	case JourneysNotFound:
		return "journeys_not_found"
	case ProviderUnavailable:
		return "provider_unavailable"
	case MalformedProviderResponse:
		return "malformed_provider_response"
	case UnexpectedFault:
		return "unexpected_fault"
	default:
		return fmt.Sprintf("failure_kind(%d)", int(k))
	}
}

// Sentinel errors for each failure kind.
// Use errors.Is to check for these.
var (
	ErrInvalidQuery        = errors.New("invalid journey query")
	ErrFlightNotFound      = errors.New("flight not found")
	ErrJourneysNotFound    = errors.New("journeys not found")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrMalformedResponse   = errors.New("malformed provider response")
)

func (k FailureKind) valid() bool {
	return k >= InvalidQuery && k <= UnexpectedFault
}

// sentinel returns the sentinel error matching the kind, or nil.
func (k FailureKind) sentinel() error {
	switch k {
	case InvalidQuery:
		return ErrInvalidQuery
	case FlightNotFound:
		return ErrFlightNotFound
	case JourneysNotFound:
		return ErrJourneysNotFound
	case ProviderUnavailable:
		return ErrProviderUnavailable
	case MalformedProviderResponse:
		return ErrMalformedResponse
	default:
		return nil
	}
}

// ProviderError is a classified failure raised by a journey provider.
// Message is the caller-facing detail; Err keeps the underlying cause for logs.
type ProviderError struct {
	Kind    FailureKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the error's kind.
func (e *ProviderError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewFlightNotFoundError reports that an airport has no flights.
func NewFlightNotFoundError(code AirportCode) *ProviderError {
	return &ProviderError{
		Kind:    FlightNotFound,
		Message: fmt.Sprintf("No flights found for airport %s.", code),
	}
}

// NewJourneysNotFoundError reports that no route connects the query's airports.
func NewJourneysNotFoundError(q JourneyQuery) *ProviderError {
	return &ProviderError{
		Kind:    JourneysNotFound,
		Message: fmt.Sprintf("No journeys found from %s to %s.", q.Origin(), q.Destination()),
	}
}

// NewProviderUnavailableError reports a transport-level failure.
func NewProviderUnavailableError(message string, err error) *ProviderError {
	return &ProviderError{
		Kind:    ProviderUnavailable,
		Message: message,
		Err:     err,
	}
}

// NewMalformedResponseError reports provider data that could not be decoded.
func NewMalformedResponseError(message string, err error) *ProviderError {
	return &ProviderError{
		Kind:    MalformedProviderResponse,
		Message: message,
		Err:     err,
	}
}

// Classify maps any error to exactly one FailureKind.
// A nil error has no kind and classifies as 0.
func Classify(err error) FailureKind {
	if err == nil {
		return 0
	}

	var rejection *Rejection
	if errors.As(err, &rejection) {
		return InvalidQuery
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Kind.valid() {
		return providerErr.Kind
	}

	switch {
	case errors.Is(err, ErrInvalidQuery):
		return InvalidQuery
	case errors.Is(err, ErrFlightNotFound):
		return FlightNotFound
	case errors.Is(err, ErrJourneysNotFound):
		return JourneysNotFound
	case errors.Is(err, ErrProviderUnavailable):
		return ProviderUnavailable
	case errors.Is(err, ErrMalformedResponse):
		return MalformedProviderResponse
	}

	if isTransportError(err) {
		return ProviderUnavailable
	}
	if isDecodeError(err) {
		return MalformedProviderResponse
	}

	return UnexpectedFault
}

// FailureMessage returns the caller-facing text for err.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}

	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Message
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Message != "" {
		return providerErr.Message
	}

	return err.Error()
}

func isTransportError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
