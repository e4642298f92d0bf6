// Package skyfare implements the flight fare provider adapter.
// It reads fares from a mock response document that mirrors the upstream
// API's wire format.
package skyfare

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the SkyFare provider.
const ProviderName = "skyfare"

// Adapter implements domain.FareProvider backed by a mock data file.
type Adapter struct {
	dataPath string
}

// NewAdapter creates an adapter reading from the given mock data path.
func NewAdapter(dataPath string) *Adapter {
	return &Adapter{dataPath: dataPath}
}

// Name implements domain.FareProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// FetchFare implements domain.FareProvider. It returns the cheapest offering
// matching the route, or (nil, nil) when the provider has none. Transient
// failures are retried with the provider backoff profile.
func (a *Adapter) FetchFare(ctx context.Context, trip domain.TripParams) (*domain.FlightFare, error) {
	cfg := retry.ProviderConfig
	cfg.RetryIf = domain.IsRetryable

	return retry.DoWithResult(ctx, func() (*domain.FlightFare, error) {
		return a.fetchFare(trip)
	}, cfg)
}

// fetchFare performs a single fare lookup.
func (a *Adapter) fetchFare(trip domain.TripParams) (*domain.FlightFare, error) {
	data, err := os.ReadFile(a.dataPath)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read response: %w", err))
	}

	var doc faresDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode response: %w", err))
	}

	t := trip.Normalize()

	var best *domain.FlightFare
	for _, f := range doc.Fares {
		if !matchesRoute(f, t) {
			continue
		}
		fare, err := normalizeFare(f)
		if err != nil {
			// Skip fares that cannot be normalized.
			continue
		}
		if best == nil || fare.Price < best.Price {
			best = &fare
		}
	}

	return best, nil
}

// matchesRoute reports whether the offering serves the requested route.
// Dates constrain the match only when the request carries them.
func matchesRoute(f fareDTO, t domain.TripParams) bool {
	if f.Origin != t.DepartureAirport || f.Destination != t.ArrivalAirport {
		return false
	}
	if t.OutboundDate != "" && f.OutboundDate != t.OutboundDate {
		return false
	}
	if t.ReturnDate != "" && f.ReturnDate != t.ReturnDate {
		return false
	}
	return true
}

// Ensure Adapter implements domain.FareProvider at compile time.
var _ domain.FareProvider = (*Adapter)(nil)
