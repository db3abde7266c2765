// Package response provides the HTTP response writers for the journey search API.
// Successful searches are JSON, failures are plain text.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/journey-search-api/internal/domain"
)

// MsgInternalError is the body sent when a request fails unexpectedly.
const MsgInternalError = "An unexpected error occurred"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Journeys writes a 200 OK response with the journeys payload as JSON.
func Journeys(c echo.Context, journeys domain.Journeys) error {
	return c.JSON(http.StatusOK, journeys)
}

// Failure writes statusCode with message as a text/plain body.
func Failure(c echo.Context, statusCode int, message string) error {
	return c.String(statusCode, message)
}

// InternalServerError writes a 500 response with the generic message.
func InternalServerError(c echo.Context) error {
	return Failure(c, http.StatusInternalServerError, MsgInternalError)
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}
