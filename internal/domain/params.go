// Package domain contains the core business entities and rules for the travel
// deal recommendation system. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"strings"
	"time"
)

// CurrencyPair identifies a forex quote, base before quote (order preserved).
type CurrencyPair struct {
	// Base is the ISO 4217 code of the traveler's currency (e.g., "USD")
	Base string `json:"base"`

	// Quote is the ISO 4217 code of the destination currency (e.g., "EUR")
	Quote string `json:"quote"`
}

// NewCurrencyPair builds a pair from two currency codes, normalizing each.
func NewCurrencyPair(base, quote string) CurrencyPair {
	return CurrencyPair{
		Base:  NormalizeCurrencyCode(base),
		Quote: NormalizeCurrencyCode(quote),
	}
}

// String renders the pair in canonical "BASE-QUOTE" form.
func (p CurrencyPair) String() string {
	return p.Base + "-" + p.Quote
}

// TripParams identifies a flight route with optional travel dates.
type TripParams struct {
	// DepartureAirport is the IATA code of the departure airport (e.g., "JFK")
	DepartureAirport string `json:"departureAirport"`

	// ArrivalAirport is the IATA code of the arrival airport (e.g., "CDG")
	ArrivalAirport string `json:"arrivalAirport"`

	// OutboundDate is the outbound travel date in YYYY-MM-DD format (optional)
	OutboundDate string `json:"outboundDate,omitempty"`

	// ReturnDate is the return travel date in YYYY-MM-DD format (optional)
	ReturnDate string `json:"returnDate,omitempty"`
}

// Normalize returns a canonical copy of the trip parameters: airport codes
// trimmed and uppercased, dates canonicalized to ISO 8601 where parseable.
func (t TripParams) Normalize() TripParams {
	return TripParams{
		DepartureAirport: NormalizeAirportCode(t.DepartureAirport),
		ArrivalAirport:   NormalizeAirportCode(t.ArrivalAirport),
		OutboundDate:     NormalizeDate(t.OutboundDate),
		ReturnDate:       NormalizeDate(t.ReturnDate),
	}
}

// NormalizeAirportCode trims whitespace and uppercases an IATA airport code.
// It never fails; malformed input passes through case-folded.
func NormalizeAirportCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeCurrencyCode trims whitespace and uppercases an ISO 4217 code.
func NormalizeCurrencyCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeCurrencyPairString canonicalizes a raw currency pair string.
//
// Rules:
//   - whitespace is trimmed and the string is uppercased
//   - a 6-character string with no separator is split 3/3 and hyphenated
//     ("usdeur" -> "USD-EUR")
//   - anything else passes through unchanged after case folding; order is
//     preserved as given (base before quote, never sorted)
//
// The function is total and idempotent.
func NormalizeCurrencyPairString(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) == 6 && !strings.Contains(s, "-") {
		return s[:3] + "-" + s[3:]
	}
	return s
}

// ParseCurrencyPair splits a normalized pair string into its currencies.
// The second return value is false when the string is not a two-code pair.
func ParseCurrencyPair(raw string) (CurrencyPair, bool) {
	s := NormalizeCurrencyPairString(raw)
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 3 || len(parts[1]) != 3 {
		return CurrencyPair{}, false
	}
	return CurrencyPair{Base: parts[0], Quote: parts[1]}, true
}

// dateLayouts are the accepted input layouts, tried in order. All canonicalize
// to ISO 8601 YYYY-MM-DD.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
}

// NormalizeDate canonicalizes a date string to YYYY-MM-DD.
// Strings that do not parse under any accepted layout are preserved as-is
// after trimming; normalization must not silently invent dates.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
