// Package http provides the HTTP handler layer for the travel deal
// recommendation API. It handles request parsing, validation, response
// formatting, and error mapping.
package http

import (
	"regexp"
	"time"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// RecommendationsRequest represents the query parameters for the
// recommendations endpoint.
type RecommendationsRequest struct {
	// BaseCurrency is the traveler's ISO 4217 currency code (e.g., "USD").
	// Optional; defaults to USD.
	BaseCurrency string `query:"base_currency"`

	// DepartureAirport is the IATA code of the departure airport (e.g., "JFK")
	DepartureAirport string `query:"departure_airport"`

	// OutboundDate is the desired outbound date in YYYY-MM-DD format (optional)
	OutboundDate string `query:"outbound_date"`

	// ReturnDate is the desired return date in YYYY-MM-DD format (optional)
	ReturnDate string `query:"return_date"`

	// Limit caps the number of recommendations returned (optional)
	Limit int `query:"limit"`
}

// Validation regex patterns.
var (
	iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate normalizes the request in place and returns any validation errors.
// Normalization happens first so case and format variants of the same request
// validate identically.
func (r *RecommendationsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateDepartureAirport(errs)
	r.validateBaseCurrency(errs)
	r.validateDate("outbound_date", &r.OutboundDate, errs)
	r.validateDate("return_date", &r.ReturnDate, errs)
	r.validateLimit(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *RecommendationsRequest) validateDepartureAirport(errs *ValidationErrors) {
	if r.DepartureAirport == "" {
		errs.Add("departure_airport", "departure_airport is required")
		return
	}

	normalized := domain.NormalizeAirportCode(r.DepartureAirport)
	if !iataCodePattern.MatchString(normalized) {
		errs.Add("departure_airport", "departure_airport must be a valid 3-letter IATA airport code")
		return
	}
	r.DepartureAirport = normalized
}

func (r *RecommendationsRequest) validateBaseCurrency(errs *ValidationErrors) {
	if r.BaseCurrency == "" {
		return
	}

	normalized := domain.NormalizeCurrencyCode(r.BaseCurrency)
	if !iataCodePattern.MatchString(normalized) {
		errs.Add("base_currency", "base_currency must be a valid 3-letter ISO 4217 currency code")
		return
	}
	r.BaseCurrency = normalized
}

func (r *RecommendationsRequest) validateDate(field string, value *string, errs *ValidationErrors) {
	if *value == "" {
		return
	}

	normalized := domain.NormalizeDate(*value)
	if !datePattern.MatchString(normalized) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", normalized); err != nil {
		errs.Add(field, field+" is not a valid date")
		return
	}
	*value = normalized
}

func (r *RecommendationsRequest) validateLimit(errs *ValidationErrors) {
	if r.Limit < 0 {
		errs.Add("limit", "limit must not be negative")
	}
}

// ToDomainQuery converts the validated request to a domain query.
func ToDomainQuery(req *RecommendationsRequest) domain.RecommendationQuery {
	return domain.RecommendationQuery{
		BaseCurrency:     req.BaseCurrency,
		DepartureAirport: req.DepartureAirport,
		OutboundDate:     req.OutboundDate,
		ReturnDate:       req.ReturnDate,
		Limit:            req.Limit,
	}
}
