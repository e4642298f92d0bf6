package http

// RecommendationsResponseDTO is the data transfer object for recommendation
// responses. It matches the expected API output format with snake_case fields.
type RecommendationsResponseDTO struct {
	GenerationID     string              `json:"generation_id"`
	BaseCurrency     string              `json:"base_currency"`
	DepartureAirport string              `json:"departure_airport"`
	Metadata         MetadataDTO         `json:"metadata"`
	Recommendations  []RecommendationDTO `json:"recommendations"`
}

// MetadataDTO contains metadata about how the response was produced.
type MetadataDTO struct {
	TotalResults int    `json:"total_results"`
	Source       string `json:"source"`
	CacheHit     bool   `json:"cache_hit"`
	ElapsedMs    int64  `json:"elapsed_ms"`
	GeneratedAt  string `json:"generated_at"`
}

// RecommendationDTO is the data transfer object for a single scored
// destination.
type RecommendationDTO struct {
	Rank              int      `json:"rank"`
	ArrivalAirport    string   `json:"arrival_airport"`
	City              string   `json:"city"`
	Country           string   `json:"country"`
	Score             float64  `json:"score"`
	ExchangeRate      float64  `json:"exchange_rate"`
	ExchangeRateTrend float64  `json:"exchange_rate_trend"`
	Fare              *FareDTO `json:"fare"`
}

// FareDTO represents fare information for a recommended destination.
// A null fare means no fare data was available for the route.
type FareDTO struct {
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Airlines        []string `json:"airlines"`
	DurationMinutes int      `json:"duration_minutes"`
	PricePerHour    float64  `json:"price_per_hour"`
	OutboundDate    string   `json:"outbound_date,omitempty"`
	ReturnDate      string   `json:"return_date,omitempty"`
	CarbonKg        *float64 `json:"carbon_emissions_kg,omitempty"`
}
