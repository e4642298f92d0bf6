package domain

import "time"

// RecommendationsResponse is the aggregated result of a recommendation query.
// It is built fresh per request or reconstructed verbatim from a cache entry
// and is never partially mutated after construction.
type RecommendationsResponse struct {
	// GenerationID uniquely identifies the build of this response
	GenerationID string `json:"generationId"`

	// BaseCurrency is the traveler's currency the scores were computed against
	BaseCurrency string `json:"baseCurrency"`

	// DepartureAirport is the IATA code the recommendations depart from
	DepartureAirport string `json:"departureAirport"`

	// Recommendations is ordered by score descending
	Recommendations []DestinationRecommendation `json:"recommendations"`

	// GeneratedAt is when this response was assembled
	GeneratedAt time.Time `json:"generatedAt"`
}

// NewRecommendationsResponse assembles a response, normalizing a nil
// recommendation slice to an empty one so JSON output is always an array.
func NewRecommendationsResponse(generationID, baseCurrency, departureAirport string, recs []DestinationRecommendation, generatedAt time.Time) RecommendationsResponse {
	if recs == nil {
		recs = []DestinationRecommendation{}
	}
	return RecommendationsResponse{
		GenerationID:     generationID,
		BaseCurrency:     baseCurrency,
		DepartureAirport: departureAirport,
		Recommendations:  recs,
		GeneratedAt:      generatedAt,
	}
}
