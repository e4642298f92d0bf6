// Package mock provides test doubles for the recommendation service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// ForexProvider is a configurable mock implementation of domain.ForexProvider.
// It supports configurable delays, errors, and per-pair rates for testing
// various scenarios including timeouts and provider failures.
type ForexProvider struct {
	name      string
	rates     map[string]domain.ExchangeRate
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewForexProvider creates a new mock forex provider with the given name.
// The provider is configured using the builder pattern methods.
func NewForexProvider(name string) *ForexProvider {
	return &ForexProvider{
		name:  name,
		rates: make(map[string]domain.ExchangeRate),
	}
}

// WithRate configures the provider to quote the given rate for a pair.
func (p *ForexProvider) WithRate(pair domain.CurrencyPair, rate, trend float64) *ForexProvider {
	p.rates[pair.String()] = domain.ExchangeRate{
		Pair:  pair,
		Rate:  rate,
		Trend: trend,
	}
	return p
}

// WithError configures the provider to return the given error.
func (p *ForexProvider) WithError(err error) *ForexProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *ForexProvider) WithDelay(d time.Duration) *ForexProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *ForexProvider) Name() string {
	return p.name
}

// FetchRate implements domain.ForexProvider.FetchRate.
// It respects context cancellation, applies configured delay, and returns
// the configured rate or error.
func (p *ForexProvider) FetchRate(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.ExchangeRate{}, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return domain.ExchangeRate{}, ctx.Err()
	}

	if p.err != nil {
		return domain.ExchangeRate{}, p.err
	}

	rate, ok := p.rates[pair.String()]
	if !ok {
		return domain.ExchangeRate{}, domain.NewProviderError(p.name, fmt.Errorf("no quote for pair %s", pair))
	}
	return rate, nil
}

// CallCount returns the number of times FetchRate was called.
func (p *ForexProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *ForexProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure ForexProvider implements domain.ForexProvider at compile time.
var _ domain.ForexProvider = (*ForexProvider)(nil)

// FareProvider is a configurable mock implementation of domain.FareProvider.
// Routes without a configured fare return (nil, nil), matching the real
// adapters' no-fare answer.
type FareProvider struct {
	name      string
	fares     map[string]*domain.FlightFare
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewFareProvider creates a new mock fare provider with the given name.
func NewFareProvider(name string) *FareProvider {
	return &FareProvider{
		name:  name,
		fares: make(map[string]*domain.FlightFare),
	}
}

// WithFare configures the provider to return the given fare for a route.
func (p *FareProvider) WithFare(origin, destination string, fare *domain.FlightFare) *FareProvider {
	p.fares[routeKey(origin, destination)] = fare
	return p
}

// WithError configures the provider to return the given error.
func (p *FareProvider) WithError(err error) *FareProvider {
	p.err = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding.
func (p *FareProvider) WithDelay(d time.Duration) *FareProvider {
	p.delay = d
	return p
}

// Name returns the provider's unique identifier.
func (p *FareProvider) Name() string {
	return p.name
}

// FetchFare implements domain.FareProvider.FetchFare.
func (p *FareProvider) FetchFare(ctx context.Context, trip domain.TripParams) (*domain.FlightFare, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if p.err != nil {
		return nil, p.err
	}

	// Unconfigured routes are a valid no-fare answer, not an error.
	return p.fares[routeKey(trip.DepartureAirport, trip.ArrivalAirport)], nil
}

// CallCount returns the number of times FetchFare was called.
func (p *FareProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset resets the call count to zero.
func (p *FareProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
}

// Ensure FareProvider implements domain.FareProvider at compile time.
var _ domain.FareProvider = (*FareProvider)(nil)

func routeKey(origin, destination string) string {
	return origin + "-" + destination
}

// SampleFare returns a fare with all fields populated with realistic values.
func SampleFare(price float64, durationMinutes int) *domain.FlightFare {
	fare := domain.NewFlightFare(price, "USD", []string{"Test Air"}, durationMinutes)
	fare.OutboundDate = "2026-10-05"
	fare.ReturnDate = "2026-10-12"
	return &fare
}

// SampleFareWithCarbon returns a fare carrying a carbon estimate.
func SampleFareWithCarbon(price float64, durationMinutes int, carbonKg float64) *domain.FlightFare {
	fare := SampleFare(price, durationMinutes)
	fare.CarbonKg = &carbonKg
	return fare
}
