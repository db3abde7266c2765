package flightapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// MsgMalformedResponse is the caller-facing message for undecodable upstream data.
const MsgMalformedResponse = "Flight provider returned malformed data."

// validate checks decoded upstream records. It is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// FlightRecord is a single flight as published by the upstream flights API.
type FlightRecord struct {
	DepartureStation string  `json:"departureStation" validate:"required,len=3,uppercase"`
	ArrivalStation   string  `json:"arrivalStation" validate:"required,len=3,uppercase"`
	FlightCarrier    string  `json:"flightCarrier" validate:"required"`
	FlightNumber     string  `json:"flightNumber" validate:"required"`
	Price            float64 `json:"price" validate:"gte=0"`
}

// toDomain converts the upstream record to a domain Flight.
func (r FlightRecord) toDomain() domain.Flight {
	return domain.Flight{
		Transport: domain.Transport{
			FlightCarrier: r.FlightCarrier,
			FlightNumber:  r.FlightNumber,
		},
		Origin:      r.DepartureStation,
		Destination: r.ArrivalStation,
		Price:       r.Price,
	}
}

// decodeFlights parses and validates an upstream flights document.
// Any parse or validation failure is reported as a MalformedProviderResponse.
func decodeFlights(r io.Reader) ([]domain.Flight, error) {
	dec := json.NewDecoder(r)

	var records []FlightRecord
	if err := dec.Decode(&records); err != nil {
		return nil, domain.NewMalformedResponseError(MsgMalformedResponse, fmt.Errorf("decode flights: %w", err))
	}
	if records == nil {
		return nil, domain.NewMalformedResponseError(MsgMalformedResponse, errors.New("decode flights: document is null"))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, domain.NewMalformedResponseError(MsgMalformedResponse, errors.New("decode flights: trailing data after document"))
	}

	flights := make([]domain.Flight, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, domain.NewMalformedResponseError(MsgMalformedResponse,
				fmt.Errorf("flight %d: %s", i, describeValidationError(err)))
		}
		flights = append(flights, rec.toDomain())
	}

	return flights, nil
}

// describeValidationError flattens validator errors into "field: tag" pairs.
func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
