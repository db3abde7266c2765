// Package http provides the HTTP handler layer for the journey search API.
// It reads the query string, hands it to the use case, and writes the
// response the use case decided on.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/journey-search-api/internal/adapter/http/response"
	"github.com/flight-search/journey-search-api/internal/usecase"
)

// Query parameter names for the journey search endpoint.
const (
	ParamOrigin      = "origin"
	ParamDestination = "destination"
)

// JourneyHandler handles HTTP requests for journey endpoints.
type JourneyHandler struct {
	useCase usecase.JourneySearchUseCase
}

// NewJourneyHandler creates a new JourneyHandler with the given use case.
func NewJourneyHandler(uc usecase.JourneySearchUseCase) *JourneyHandler {
	return &JourneyHandler{
		useCase: uc,
	}
}

// GetJourneys handles GET /api/flight
//
// @Summary Find journeys between two airports
// @Description Returns every journey from origin to destination, cheapest first
// @Tags journeys
// @Produce json
// @Produce plain
// @Param origin query string true "Origin IATA code (3 uppercase letters)" example(MZL)
// @Param destination query string true "Destination IATA code (3 uppercase letters)" example(BCN)
// @Success 200 {array} domain.Journey
// @Failure 400 {string} string "Invalid origin or destination"
// @Failure 404 {string} string "No flights or journeys found"
// @Failure 500 {string} string "Malformed provider data or unexpected error"
// @Failure 503 {string} string "Flight provider unavailable"
// @Router /api/flight [get]
func (h *JourneyHandler) GetJourneys(c echo.Context) error {
	res := h.useCase.HandleRequest(
		c.Request().Context(),
		c.QueryParam(ParamOrigin),
		c.QueryParam(ParamDestination),
	)

	if res.StatusCode != http.StatusOK {
		return response.Failure(c, res.StatusCode, res.Message)
	}
	return response.Journeys(c, res.Journeys)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *JourneyHandler) Health(c echo.Context) error {
	return response.Health(c)
}
