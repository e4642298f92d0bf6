package domain

import "context"

// ForexProvider fetches exchange rates from an external forex data source.
// Implementations live in internal/adapter/provider and must be safe for
// concurrent use.
type ForexProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// FetchRate returns the exchange rate and recent trend for the pair.
	// The call should carry its own bounded timeout via ctx.
	FetchRate(ctx context.Context, pair CurrencyPair) (ExchangeRate, error)
}

// FareProvider fetches flight fares from an external fare data source.
type FareProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// FetchFare returns the best fare for the route, or (nil, nil) when the
	// provider has no offering for it. An absent fare is a valid answer, not
	// an error; it cascades into neutral cost scoring downstream.
	FetchFare(ctx context.Context, trip TripParams) (*FlightFare, error)
}
