package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/fetch"
)

// mockUseCase is a mock implementation of RecommendUseCase for testing.
type mockUseCase struct {
	recommendFunc func(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error)
}

func (m *mockUseCase) Recommend(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, query)
	}
	resp := domain.NewRecommendationsResponse("gen-1", query.BaseCurrency, query.DepartureAirport, nil, time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC))
	return &resp, fetch.SourceFresh, nil
}

// setupTestHandler creates a test Echo instance and RecommendationHandler.
func setupTestHandler(uc *mockUseCase) *echo.Echo {
	e := echo.New()
	h := NewRecommendationHandler(uc)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetRecommendations_Success(t *testing.T) {
	carbon := 510.0
	fare := domain.NewFlightFare(600, "USD", []string{"Air France"}, 420)
	fare.CarbonKg = &carbon

	mock := &mockUseCase{
		recommendFunc: func(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error) {
			resp := domain.NewRecommendationsResponse("gen-42", query.BaseCurrency, query.DepartureAirport,
				[]domain.DestinationRecommendation{
					{
						DestinationCandidate: domain.DestinationCandidate{
							DepartureAirport:  "JFK",
							ArrivalAirport:    "CDG",
							City:              "Paris",
							Country:           "France",
							ExchangeRate:      0.92,
							ExchangeRateTrend: 0.1,
							Fare:              &fare,
						},
						Score: 0.5239,
					},
				},
				time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC))
			return &resp, fetch.SourceCache, nil
		},
	}

	rec := makeRequest(setupTestHandler(mock), "/api/v1/recommendations?departure_airport=JFK&base_currency=USD")
	require.Equal(t, http.StatusOK, rec.Code)

	var body RecommendationsResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "gen-42", body.GenerationID)
	assert.Equal(t, "USD", body.BaseCurrency)
	assert.Equal(t, "JFK", body.DepartureAirport)
	assert.Equal(t, 1, body.Metadata.TotalResults)
	assert.Equal(t, "cache", body.Metadata.Source)
	assert.True(t, body.Metadata.CacheHit)

	require.Len(t, body.Recommendations, 1)
	got := body.Recommendations[0]
	assert.Equal(t, 1, got.Rank)
	assert.Equal(t, "CDG", got.ArrivalAirport)
	assert.Equal(t, "Paris", got.City)
	assert.InDelta(t, 0.5239, got.Score, 1e-9)
	require.NotNil(t, got.Fare)
	assert.Equal(t, 600.0, got.Fare.Price)
	assert.InDelta(t, 600.0/7.0, got.Fare.PricePerHour, 1e-9)
	require.NotNil(t, got.Fare.CarbonKg)
	assert.Equal(t, 510.0, *got.Fare.CarbonKg)
}

func TestGetRecommendations_NullFareSerializesAsNull(t *testing.T) {
	mock := &mockUseCase{
		recommendFunc: func(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error) {
			resp := domain.NewRecommendationsResponse("gen-1", "USD", "JFK",
				[]domain.DestinationRecommendation{
					{
						DestinationCandidate: domain.DestinationCandidate{ArrivalAirport: "LIS", ExchangeRate: 0.92},
						Score:                0.4,
					},
				}, time.Now())
			return &resp, fetch.SourceFresh, nil
		},
	}

	rec := makeRequest(setupTestHandler(mock), "/api/v1/recommendations?departure_airport=JFK")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fare":null`)
}

func TestGetRecommendations_MissingDepartureAirport(t *testing.T) {
	rec := makeRequest(setupTestHandler(&mockUseCase{}), "/api/v1/recommendations")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body["code"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "departure_airport")
}

func TestGetRecommendations_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "malformed airport", query: "departure_airport=NEWYORK", field: "departure_airport"},
		{name: "malformed currency", query: "departure_airport=JFK&base_currency=DOLLARS", field: "base_currency"},
		{name: "malformed outbound date", query: "departure_airport=JFK&outbound_date=soon", field: "outbound_date"},
		{name: "impossible return date", query: "departure_airport=JFK&return_date=2026-13-45", field: "return_date"},
		{name: "negative limit", query: "departure_airport=JFK&limit=-1", field: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := makeRequest(setupTestHandler(&mockUseCase{}), "/api/v1/recommendations?"+tt.query)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			details, ok := body["details"].(map[string]interface{})
			require.True(t, ok)
			assert.Contains(t, details, tt.field)
		})
	}
}

func TestGetRecommendations_UnparseableLimit(t *testing.T) {
	rec := makeRequest(setupTestHandler(&mockUseCase{}), "/api/v1/recommendations?departure_airport=JFK&limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_request")
}

func TestGetRecommendations_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "provider failure maps to 503",
			err:        domain.ErrProviderFetch,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "provider_error",
		},
		{
			name:       "wrapped provider failure maps to 503",
			err:        errors.Join(errors.New("fetch rates"), domain.ErrProviderFetch),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "provider_error",
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "timeout",
		},
		{
			name:       "cancellation maps to 504",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "timeout",
		},
		{
			name:       "domain validation maps to 400",
			err:        domain.ErrInvalidRequest,
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "unknown failure maps to 500",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockUseCase{
				recommendFunc: func(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error) {
					return nil, "", tt.err
				},
			}

			rec := makeRequest(setupTestHandler(mock), "/api/v1/recommendations?departure_airport=JFK")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestHealth(t *testing.T) {
	rec := makeRequest(setupTestHandler(&mockUseCase{}), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
