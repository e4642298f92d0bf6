package skyfare

// faresDocument is the upstream response format.
type faresDocument struct {
	// Provider is the upstream's self-identification
	Provider string `json:"provider"`

	// Fares lists the available offerings
	Fares []fareDTO `json:"fares"`
}

// fareDTO is a single fare offering as the upstream renders it.
type fareDTO struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Price is the total round-trip price
	Price float64 `json:"price"`

	// Currency is the ISO 4217 code the price is denominated in
	Currency string `json:"currency"`

	// Airlines lists the operating airline names
	Airlines []string `json:"airlines"`

	// DurationMinutes is the total flight duration in minutes
	DurationMinutes int `json:"duration_minutes"`

	// OutboundDate is the outbound date in YYYY-MM-DD format
	OutboundDate string `json:"outbound_date"`

	// ReturnDate is the return date in YYYY-MM-DD format
	ReturnDate string `json:"return_date"`

	// CarbonKg is the per-passenger carbon estimate, when reported
	CarbonKg *float64 `json:"carbon_kg,omitempty"`
}
