// Package http provides the HTTP handler layer for the travel deal
// recommendation API. It handles request parsing, validation, response
// formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/http/response"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/usecase"
)

// RecommendationHandler handles HTTP requests for recommendation endpoints.
type RecommendationHandler struct {
	useCase usecase.RecommendUseCase
}

// NewRecommendationHandler creates a new RecommendationHandler with the given
// use case.
func NewRecommendationHandler(uc usecase.RecommendUseCase) *RecommendationHandler {
	return &RecommendationHandler{
		useCase: uc,
	}
}

// GetRecommendations handles GET /api/v1/recommendations
//
// @Summary Get travel deal recommendations
// @Description Rank candidate destinations from a departure airport by exchange rate, fare cost, and carbon efficiency
// @Tags recommendations
// @Produce json
// @Param base_currency query string false "Traveler's ISO 4217 currency (default USD)"
// @Param departure_airport query string true "Departure airport IATA code"
// @Param outbound_date query string false "Outbound date (YYYY-MM-DD)"
// @Param return_date query string false "Return date (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of recommendations"
// @Success 200 {object} RecommendationsResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	var req RecommendationsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequest(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	query := ToDomainQuery(&req)

	start := time.Now()
	result, source, err := h.useCase.Recommend(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	dto := ToRecommendationsResponseDTO(result, source, time.Since(start))
	return response.Recommendations(c, dto)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *RecommendationHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *RecommendationHandler) handleError(c echo.Context, err error) error {
	// Provider failures are retryable from the client's side
	if errors.Is(err, domain.ErrProviderFetch) {
		return response.ProviderUnavailable(c)
	}

	// Global deadline exhausted before the response could be assembled
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Client went away mid-request
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Domain-level validation (should normally be caught at the request layer)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *RecommendationHandler) Health(c echo.Context) error {
	return response.Health(c)
}
