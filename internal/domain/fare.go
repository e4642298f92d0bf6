package domain

// UnknownAirline is the fallback airline name used when a provider returns a
// fare without attributed airlines.
const UnknownAirline = "Unknown"

// FlightFare represents a round-trip fare offering for a route.
// It is the normalized output of a fare provider adapter.
type FlightFare struct {
	// Price is the total fare amount (non-negative)
	Price float64 `json:"price"`

	// Currency is the ISO 4217 code the price is denominated in
	Currency string `json:"currency"`

	// Airlines lists the operating airlines; never empty (falls back to ["Unknown"])
	Airlines []string `json:"airlines"`

	// DurationMinutes is the total flight duration in minutes (non-negative)
	DurationMinutes int `json:"durationMinutes"`

	// OutboundDate is the outbound travel date in YYYY-MM-DD format
	OutboundDate string `json:"outboundDate,omitempty"`

	// ReturnDate is the return travel date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate,omitempty"`

	// CarbonKg is the estimated carbon emissions per passenger in kilograms,
	// when the provider reports it
	CarbonKg *float64 `json:"carbonEmissionsKg,omitempty"`
}

// NewFlightFare builds a fare, applying the unknown-airline fallback and
// clamping negative price and duration to zero.
func NewFlightFare(price float64, currency string, airlines []string, durationMinutes int) FlightFare {
	if price < 0 {
		price = 0
	}
	if durationMinutes < 0 {
		durationMinutes = 0
	}
	if len(airlines) == 0 {
		airlines = []string{UnknownAirline}
	}
	return FlightFare{
		Price:           price,
		Currency:        NormalizeCurrencyCode(currency),
		Airlines:        airlines,
		DurationMinutes: durationMinutes,
	}
}

// PricePerHour returns the fare price divided by the flight duration in hours.
// A zero duration is treated as a single hour so the value stays finite.
func (f *FlightFare) PricePerHour() float64 {
	if f.DurationMinutes <= 0 {
		return f.Price
	}
	return f.Price / (float64(f.DurationMinutes) / 60.0)
}

// AirlinePriceShare returns the price share attributed to each airline,
// assuming an even split across the operating airlines.
func (f *FlightFare) AirlinePriceShare() float64 {
	if len(f.Airlines) == 0 {
		return f.Price
	}
	return f.Price / float64(len(f.Airlines))
}

// EmissionsPerPassenger returns the carbon estimate divided across passengers.
// The second return value is false when the provider reported no estimate.
func (f *FlightFare) EmissionsPerPassenger(passengers int) (float64, bool) {
	if f.CarbonKg == nil {
		return 0, false
	}
	if passengers < 1 {
		passengers = 1
	}
	return *f.CarbonKg / float64(passengers), true
}

// HasEmissions reports whether the fare carries a carbon estimate.
func (f *FlightFare) HasEmissions() bool {
	return f.CarbonKg != nil
}
