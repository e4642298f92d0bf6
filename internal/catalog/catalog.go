// Package catalog provides the static destination catalog the aggregator
// draws candidate destinations from.
package catalog

import (
	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// Destination is a candidate destination airport with its locale data.
type Destination struct {
	// Airport is the IATA code of the destination airport
	Airport string `json:"airport"`

	// City is the destination city name
	City string `json:"city"`

	// Country is the destination country name
	Country string `json:"country"`

	// Currency is the ISO 4217 code of the local currency
	Currency string `json:"currency"`
}

// Catalog holds the known destinations.
type Catalog struct {
	destinations []Destination
}

// New creates a catalog from the given destinations.
func New(destinations []Destination) *Catalog {
	return &Catalog{destinations: destinations}
}

// Default returns the built-in destination catalog.
func Default() *Catalog {
	return New([]Destination{
		{Airport: "CDG", City: "Paris", Country: "France", Currency: "EUR"},
		{Airport: "LHR", City: "London", Country: "United Kingdom", Currency: "GBP"},
		{Airport: "NRT", City: "Tokyo", Country: "Japan", Currency: "JPY"},
		{Airport: "SYD", City: "Sydney", Country: "Australia", Currency: "AUD"},
		{Airport: "GRU", City: "São Paulo", Country: "Brazil", Currency: "BRL"},
		{Airport: "MEX", City: "Mexico City", Country: "Mexico", Currency: "MXN"},
		{Airport: "BKK", City: "Bangkok", Country: "Thailand", Currency: "THB"},
		{Airport: "IST", City: "Istanbul", Country: "Türkiye", Currency: "TRY"},
		{Airport: "CPT", City: "Cape Town", Country: "South Africa", Currency: "ZAR"},
		{Airport: "KEF", City: "Reykjavík", Country: "Iceland", Currency: "ISK"},
		{Airport: "SIN", City: "Singapore", Country: "Singapore", Currency: "SGD"},
		{Airport: "JFK", City: "New York", Country: "United States", Currency: "USD"},
		{Airport: "YVR", City: "Vancouver", Country: "Canada", Currency: "CAD"},
		{Airport: "DEL", City: "Delhi", Country: "India", Currency: "INR"},
		{Airport: "LIS", City: "Lisbon", Country: "Portugal", Currency: "EUR"},
	})
}

// From returns the destinations reachable from the given departure airport,
// excluding the departure airport itself. The departure code is normalized
// before matching.
func (c *Catalog) From(departureAirport string) []Destination {
	dep := domain.NormalizeAirportCode(departureAirport)

	result := make([]Destination, 0, len(c.destinations))
	for _, d := range c.destinations {
		if d.Airport == dep {
			continue
		}
		result = append(result, d)
	}
	return result
}

// Len returns the number of destinations in the catalog.
func (c *Catalog) Len() int {
	return len(c.destinations)
}
