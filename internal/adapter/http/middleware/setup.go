package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log entry carries the ID
//  2. RequestLogger, which sees the final status including recovered panics
//  3. Recover, innermost around the handlers
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	SetupWithConfig(e, log, RecoveryConfig{})
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, recoveryConfig RecoveryConfig) {
	e.Use(
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, recoveryConfig),
	)
}
