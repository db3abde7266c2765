package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the journey search API routes.
func RegisterRoutes(e *echo.Echo, h *JourneyHandler) {
	// Health check endpoint (root level for load balancers)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/flight", h.GetJourneys)
}
