// Package http provides the HTTP handler layer for the travel deal
// recommendation API.
package http

import (
	"time"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/fetch"
)

// ToRecommendationsResponseDTO converts a domain response to its API shape,
// attaching request-scoped metadata that is not part of the cached payload.
func ToRecommendationsResponseDTO(resp *domain.RecommendationsResponse, source fetch.Source, elapsed time.Duration) *RecommendationsResponseDTO {
	if resp == nil {
		return nil
	}

	dto := &RecommendationsResponseDTO{
		GenerationID:     resp.GenerationID,
		BaseCurrency:     resp.BaseCurrency,
		DepartureAirport: resp.DepartureAirport,
		Metadata: MetadataDTO{
			TotalResults: len(resp.Recommendations),
			Source:       string(source),
			CacheHit:     source == fetch.SourceCache,
			ElapsedMs:    elapsed.Milliseconds(),
			GeneratedAt:  resp.GeneratedAt.UTC().Format(time.RFC3339),
		},
		Recommendations: make([]RecommendationDTO, len(resp.Recommendations)),
	}

	for i, rec := range resp.Recommendations {
		dto.Recommendations[i] = ToRecommendationDTO(&rec, i+1)
	}

	return dto
}

// ToRecommendationDTO converts a scored destination to its API shape.
// Rank is 1-based and reflects the position in the ordered response.
func ToRecommendationDTO(rec *domain.DestinationRecommendation, rank int) RecommendationDTO {
	return RecommendationDTO{
		Rank:              rank,
		ArrivalAirport:    rec.ArrivalAirport,
		City:              rec.City,
		Country:           rec.Country,
		Score:             rec.Score,
		ExchangeRate:      rec.ExchangeRate,
		ExchangeRateTrend: rec.ExchangeRateTrend,
		Fare:              ToFareDTO(rec.Fare),
	}
}

// ToFareDTO converts a fare to its API shape. A nil fare stays nil so the
// response serializes it as an explicit null.
func ToFareDTO(fare *domain.FlightFare) *FareDTO {
	if fare == nil {
		return nil
	}

	return &FareDTO{
		Price:           fare.Price,
		Currency:        fare.Currency,
		Airlines:        fare.Airlines,
		DurationMinutes: fare.DurationMinutes,
		PricePerHour:    fare.PricePerHour(),
		OutboundDate:    fare.OutboundDate,
		ReturnDate:      fare.ReturnDate,
		CarbonKg:        fare.CarbonKg,
	}
}
