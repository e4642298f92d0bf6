package cache

import (
	"strings"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// datePlaceholder stands in for an absent date field so that partial-route
// keys remain distinguishable from full-route keys.
const datePlaceholder = "none"

// keySeparator joins the domain tag and ordered field values.
// Keys are for lookup, not security: concatenation is collision-resistant
// enough within a domain and stays inspectable.
const keySeparator = ":"

// ForexKey derives the cache key for a currency pair.
// Equal normalized pairs always yield equal keys.
func ForexKey(pair domain.CurrencyPair) string {
	return string(DomainForex) + keySeparator + pair.String()
}

// FlightKey derives the cache key for a flight route with optional dates.
// All four fields are always present in the key; absent dates are rendered
// with a fixed placeholder.
func FlightKey(trip domain.TripParams) string {
	t := trip.Normalize()
	return strings.Join([]string{
		string(DomainFlight),
		t.DepartureAirport,
		t.ArrivalAirport,
		orPlaceholder(t.OutboundDate),
		orPlaceholder(t.ReturnDate),
	}, keySeparator)
}

// RecommendationKey derives the cache key for an assembled recommendations
// response.
func RecommendationKey(q domain.RecommendationQuery) string {
	return strings.Join([]string{
		string(DomainRecommendation),
		domain.NormalizeCurrencyCode(q.BaseCurrency),
		domain.NormalizeAirportCode(q.DepartureAirport),
		orPlaceholder(domain.NormalizeDate(q.OutboundDate)),
		orPlaceholder(domain.NormalizeDate(q.ReturnDate)),
	}, keySeparator)
}

func orPlaceholder(s string) string {
	if s == "" {
		return datePlaceholder
	}
	return s
}
