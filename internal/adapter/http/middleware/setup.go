package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	// DisableStackAll disables capturing stacks of all goroutines.
	DisableStackAll bool

	// DisablePrintStack disables including the stack trace in the log entry.
	DisablePrintStack bool
}

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID - first, so all subsequent logging can correlate
//  2. RequestLogger - logs every request with its request ID
//  3. Recover - catches panics from the handler chain and returns 500
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))
}
