package domain

// ExchangeRate is the normalized output of a forex provider adapter for a
// single currency pair.
type ExchangeRate struct {
	// Pair is the currency pair this rate quotes
	Pair CurrencyPair `json:"pair"`

	// Rate is the amount of quote currency one unit of base currency buys
	// (positive)
	Rate float64 `json:"rate"`

	// Trend is the recent relative movement of the rate in [-1, 1];
	// positive means the base currency is strengthening
	Trend float64 `json:"trend"`
}

// DestinationCandidate is a destination under consideration for
// recommendation, combining catalog, forex, and fare data.
type DestinationCandidate struct {
	// DepartureAirport is the IATA code the traveler departs from
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the IATA code of the candidate destination
	ArrivalAirport string `json:"arrivalAirport"`

	// City is the destination city name
	City string `json:"city"`

	// Country is the destination country name
	Country string `json:"country"`

	// ExchangeRate is the base->destination currency rate (positive)
	ExchangeRate float64 `json:"exchangeRate"`

	// ExchangeRateTrend is the recent rate movement in [-1, 1]
	ExchangeRateTrend float64 `json:"exchangeRateTrend"`

	// Fare is the best known fare for the route; nil when no fare data
	// is available
	Fare *FlightFare `json:"fare,omitempty"`
}

// DestinationRecommendation is a scored candidate.
// Score is a pure function of the candidate's fields: recomputing it for
// identical inputs always yields the identical value.
type DestinationRecommendation struct {
	DestinationCandidate

	// Score is the combined recommendation score; higher is better
	Score float64 `json:"score"`
}
