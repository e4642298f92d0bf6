package openexchange

import (
	"fmt"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// normalizeQuote converts an upstream quote to the domain ExchangeRate.
// Non-positive rates are rejected; the trend is clamped to [-1, 1].
func normalizeQuote(q quoteDTO) (domain.ExchangeRate, error) {
	if q.Rate <= 0 {
		return domain.ExchangeRate{}, domain.NewProviderError(ProviderName, fmt.Errorf("non-positive rate %v for %s-%s", q.Rate, q.Base, q.Quote))
	}

	trend := q.Trend30d
	if trend > 1 {
		trend = 1
	}
	if trend < -1 {
		trend = -1
	}

	return domain.ExchangeRate{
		Pair:  domain.NewCurrencyPair(q.Base, q.Quote),
		Rate:  q.Rate,
		Trend: trend,
	}, nil
}
