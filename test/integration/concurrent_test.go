package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

func TestConcurrentRequests_ShareOneProviderFlight(t *testing.T) {
	// The delay keeps the first build in flight long enough for every other
	// request to join it instead of claiming its own.
	forex := SeededForexProvider().WithDelay(50 * time.Millisecond)
	ts := NewTestServer(forex, SeededFareProvider(), nil)

	const requests = 10
	results := make([]Response, requests)
	var wg sync.WaitGroup

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ts.RecommendRequest("departure_airport=JFK")
		}(i)
	}
	wg.Wait()

	var generationID string
	for _, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code)
		body, err := resp.ParseRecommendations()
		require.NoError(t, err)
		require.Len(t, body.Recommendations, 3)

		if generationID == "" {
			generationID = body.GenerationID
		}
		assert.Equal(t, generationID, body.GenerationID, "every caller sees the same assembled response")
	}

	// One build resolved three currency pairs and three routes, regardless of
	// how many callers were waiting on it.
	assert.Equal(t, 3, ts.Forex.CallCount())
	assert.Equal(t, 3, ts.Fares.CallCount())
}

func TestConcurrentRequests_WarmCacheStaysQuiet(t *testing.T) {
	ts := NewDefaultTestServer()

	warm := ts.RecommendRequest("departure_airport=JFK")
	require.Equal(t, http.StatusOK, warm.Code)
	require.Equal(t, 3, ts.Forex.CallCount())

	const requests = 20
	var wg sync.WaitGroup
	codes := make([]int, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = ts.RecommendRequest("departure_airport=JFK").Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}
	assert.Equal(t, 3, ts.Forex.CallCount(), "a warm cache serves every caller without provider traffic")
	assert.Equal(t, 3, ts.Fares.CallCount())
}

func TestConcurrentUseCaseCalls_FailurePropagatesToEveryWaiter(t *testing.T) {
	forex := SeededForexProvider().
		WithDelay(50 * time.Millisecond).
		WithError(domain.NewProviderError("mock_forex", context.DeadlineExceeded))
	ts := NewTestServer(forex, SeededFareProvider(), nil)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = ts.UseCase.Recommend(context.Background(), domain.RecommendationQuery{DepartureAirport: "JFK"})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProviderFetch)
	}
}
