package openexchange

// ratesDocument is the upstream response format.
type ratesDocument struct {
	// Provider is the upstream's self-identification
	Provider string `json:"provider"`

	// Quotes lists the available currency pair quotes
	Quotes []quoteDTO `json:"quotes"`
}

// quoteDTO is a single currency pair quote as the upstream renders it.
type quoteDTO struct {
	// Base is the base currency code
	Base string `json:"base"`

	// Quote is the quote currency code
	Quote string `json:"quote"`

	// Rate is the amount of quote currency per unit of base currency
	Rate float64 `json:"rate"`

	// Trend30d is the relative rate movement over the last 30 days
	Trend30d float64 `json:"trend_30d"`
}
