// Package domain contains the core entities and rules of the journey search service.
// It defines the validated query, the journey payload, the failure taxonomy,
// and the capability every journey provider must implement.
package domain

import (
	"regexp"
	"unicode/utf8"
)

// Rejection messages returned to callers. Callers may match on the exact text.
const (
	MsgEmptyEndpoints = "Origin and destination must not be null or empty."
	MsgInvalidLength  = "Origin and destination must have a length of 3 characters."
	MsgNotUppercase   = "Origin and destination must consist only of uppercase letters."
)

const airportCodeLength = 3

// airportCodePattern matches IATA airport codes (3 uppercase letters).
var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// AirportCode is a 3-letter uppercase airport identifier (e.g., "MDE").
type AirportCode string

// String returns the code as a plain string.
func (a AirportCode) String() string {
	return string(a)
}

// JourneyQuery is a validated origin/destination pair.
// It can only be built through NewJourneyQuery and is read-only afterwards.
type JourneyQuery struct {
	origin      AirportCode
	destination AirportCode
}

// Origin returns the departure airport.
func (q JourneyQuery) Origin() AirportCode {
	return q.origin
}

// Destination returns the arrival airport.
func (q JourneyQuery) Destination() AirportCode {
	return q.destination
}

// Rejection describes why raw input could not become a JourneyQuery.
type Rejection struct {
	Message string
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	return r.Message
}

// Kind always reports InvalidQuery.
func (r *Rejection) Kind() FailureKind {
	return InvalidQuery
}

// Is reports whether target is ErrInvalidQuery.
func (r *Rejection) Is(target error) bool {
	return target == ErrInvalidQuery
}

// NewJourneyQuery validates raw origin and destination values.
//
// Checks run in a fixed order and the first failing one wins:
//  1. both values are non-empty
//  2. both values are exactly 3 characters long
//  3. both values consist of uppercase letters A-Z only
//
// Input is never normalized; "mde" is rejected, not upper-cased.
func NewJourneyQuery(origin, destination string) (JourneyQuery, error) {
	if origin == "" || destination == "" {
		return JourneyQuery{}, &Rejection{Message: MsgEmptyEndpoints}
	}

	if utf8.RuneCountInString(origin) != airportCodeLength ||
		utf8.RuneCountInString(destination) != airportCodeLength {
		return JourneyQuery{}, &Rejection{Message: MsgInvalidLength}
	}

	if !airportCodePattern.MatchString(origin) || !airportCodePattern.MatchString(destination) {
		return JourneyQuery{}, &Rejection{Message: MsgNotUppercase}
	}

	return JourneyQuery{
		origin:      AirportCode(origin),
		destination: AirportCode(destination),
	}, nil
}
