// Package integration provides helpers and integration tests for the travel
// deal recommendation service. Integration tests verify that components work
// together correctly: HTTP handlers, the use case, the cache-aside fetch
// layer, and the provider adapters.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/http"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/provider/openexchange"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/adapter/provider/skyfare"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/cache"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/catalog"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/fetch"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/timeutil"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/obs"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/usecase"
	"github.com/travel-deals/travel-deal-recommendation-service/test/mock"
)

// TestServer wraps a fully wired service instance for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Clock   *timeutil.MockClock
	Store   *cache.MemoryStore
	Forex   *mock.ForexProvider
	Fares   *mock.FareProvider
	UseCase usecase.RecommendUseCase
}

// testCatalog is a compact destination catalog so tests control exactly which
// forex pairs and routes the providers must answer.
func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Destination{
		{Airport: "CDG", City: "Paris", Country: "France", Currency: "EUR"},
		{Airport: "LHR", City: "London", Country: "United Kingdom", Currency: "GBP"},
		{Airport: "MEX", City: "Mexico City", Country: "Mexico", Currency: "MXN"},
	})
}

// SeededForexProvider returns a mock forex provider quoting every pair the
// test catalog needs from a USD base.
func SeededForexProvider() *mock.ForexProvider {
	return mock.NewForexProvider("mock_forex").
		WithRate(domain.NewCurrencyPair("USD", "EUR"), 0.92, 0.1).
		WithRate(domain.NewCurrencyPair("USD", "GBP"), 0.78, -0.2).
		WithRate(domain.NewCurrencyPair("USD", "MXN"), 18.6, 0.05)
}

// SeededFareProvider returns a mock fare provider with fares for two of the
// three test catalog routes. LHR deliberately has none, exercising the
// fare-less scoring path end to end.
func SeededFareProvider() *mock.FareProvider {
	return mock.NewFareProvider("mock_fares").
		WithFare("JFK", "CDG", mock.SampleFareWithCarbon(600, 420, 510)).
		WithFare("JFK", "MEX", mock.SampleFare(380, 300))
}

// NewTestServer wires a service instance around the given providers using an
// in-memory store and a mock clock. A nil config uses test-friendly timeouts.
func NewTestServer(forex *mock.ForexProvider, fares *mock.FareProvider, config *usecase.Config) *TestServer {
	clock := timeutil.NewMockClockFromString("2026-10-05T10:00:00Z")
	store := cache.NewMemoryStore(clock, 0)
	orch := fetch.NewOrchestrator(store, obs.NewMetrics(), nil)

	if config == nil {
		config = &usecase.Config{
			GlobalTimeout:   2 * time.Second,
			ProviderTimeout: 500 * time.Millisecond,
		}
	}

	uc := usecase.NewRecommendUseCase(testCatalog(), orch, forex, fares, usecase.NewScorer(usecase.DefaultScoringConfig()), clock, nil, config)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	httpAdapter.RegisterRoutes(e, httpAdapter.NewRecommendationHandler(uc))

	return &TestServer{
		Echo:    e,
		Clock:   clock,
		Store:   store,
		Forex:   forex,
		Fares:   fares,
		UseCase: uc,
	}
}

// NewDefaultTestServer wires a test server with seeded providers.
func NewDefaultTestServer() *TestServer {
	return NewTestServer(SeededForexProvider(), SeededFareProvider(), nil)
}

// NewFileBackedServer wires a service instance around the real provider
// adapters reading the bundled mock response documents, with the full default
// catalog. This is the closest the tests get to the production wiring.
func NewFileBackedServer() *TestServer {
	clock := timeutil.NewMockClockFromString("2026-10-05T10:00:00Z")
	store := cache.NewMemoryStore(clock, 0)
	orch := fetch.NewOrchestrator(store, obs.NewMetrics(), nil)

	forex := openexchange.NewAdapter(filepath.Join(mockDataDir(), "open_exchange_rates.json"))
	fares := skyfare.NewAdapter(filepath.Join(mockDataDir(), "skyfare_fares.json"))

	config := &usecase.Config{
		GlobalTimeout:   5 * time.Second,
		ProviderTimeout: time.Second,
	}
	uc := usecase.NewRecommendUseCase(catalog.Default(), orch, forex, fares, usecase.NewScorer(usecase.DefaultScoringConfig()), clock, nil, config)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	httpAdapter.RegisterRoutes(e, httpAdapter.NewRecommendationHandler(uc))

	return &TestServer{
		Echo:    e,
		Clock:   clock,
		Store:   store,
		UseCase: uc,
	}
}

// mockDataDir locates docs/response-mock relative to this source file.
func mockDataDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "docs", "response-mock")
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a GET request against the test server.
func (ts *TestServer) Do(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RecommendRequest makes a recommendations request with the given raw query
// string (without the leading "?").
func (ts *TestServer) RecommendRequest(query string) Response {
	path := "/api/v1/recommendations"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(path)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do("/health")
}

// ParseRecommendations parses the response body as a recommendations payload.
func (r *Response) ParseRecommendations() (*httpAdapter.RecommendationsResponseDTO, error) {
	var resp httpAdapter.RecommendationsResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
