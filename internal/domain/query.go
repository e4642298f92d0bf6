package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultBaseCurrency is applied when a query omits the base currency.
const DefaultBaseCurrency = "USD"

// RecommendationQuery defines the parameters for a recommendation request.
type RecommendationQuery struct {
	// BaseCurrency is the traveler's ISO 4217 currency (default: "USD")
	BaseCurrency string `json:"baseCurrency"`

	// DepartureAirport is the IATA code of the departure airport (required)
	DepartureAirport string `json:"departureAirport"`

	// OutboundDate is the desired outbound date in YYYY-MM-DD format (optional)
	OutboundDate string `json:"outboundDate,omitempty"`

	// ReturnDate is the desired return date in YYYY-MM-DD format (optional)
	ReturnDate string `json:"returnDate,omitempty"`

	// Limit caps the number of recommendations returned (0 = server default)
	Limit int `json:"limit,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyCodeRegex matches valid ISO 4217 currency codes.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the query is valid after normalization.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q *RecommendationQuery) Validate() error {
	if q.DepartureAirport == "" {
		return fmt.Errorf("%w: departure airport is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(q.DepartureAirport) {
		return fmt.Errorf("%w: departure airport must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.DepartureAirport)
	}

	if q.BaseCurrency != "" && !currencyCodeRegex.MatchString(q.BaseCurrency) {
		return fmt.Errorf("%w: base currency must be a valid 3-letter ISO 4217 code, got %q", ErrInvalidRequest, q.BaseCurrency)
	}

	if err := validateDate("outbound date", q.OutboundDate); err != nil {
		return err
	}
	if err := validateDate("return date", q.ReturnDate); err != nil {
		return err
	}

	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidRequest)
	}

	return nil
}

// validateDate checks an optional date field is a real YYYY-MM-DD date.
func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (q *RecommendationQuery) SetDefaults() {
	if q.BaseCurrency == "" {
		q.BaseCurrency = DefaultBaseCurrency
	}
}

// Normalize canonicalizes the query fields in place.
func (q *RecommendationQuery) Normalize() {
	q.BaseCurrency = NormalizeCurrencyCode(q.BaseCurrency)
	q.DepartureAirport = NormalizeAirportCode(q.DepartureAirport)
	q.OutboundDate = NormalizeDate(q.OutboundDate)
	q.ReturnDate = NormalizeDate(q.ReturnDate)
}
