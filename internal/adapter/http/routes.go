// Package http provides the HTTP handler layer for the travel deal
// recommendation API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all recommendation API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *RecommendationHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")
	api.GET("/recommendations", h.GetRecommendations)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// The health endpoint stays outside the middleware chain.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *RecommendationHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)
	api.GET("/recommendations", h.GetRecommendations)
}
