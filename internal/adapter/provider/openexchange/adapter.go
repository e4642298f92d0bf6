// Package openexchange implements the forex provider adapter.
// It reads quotes from a mock response document that mirrors the upstream
// API's wire format.
package openexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/retry"
)

// ProviderName is the unique identifier for the Open Exchange provider.
const ProviderName = "open_exchange"

// Adapter implements domain.ForexProvider backed by a mock data file.
type Adapter struct {
	dataPath string
}

// NewAdapter creates an adapter reading from the given mock data path.
func NewAdapter(dataPath string) *Adapter {
	return &Adapter{dataPath: dataPath}
}

// Name implements domain.ForexProvider.
func (a *Adapter) Name() string {
	return ProviderName
}

// FetchRate implements domain.ForexProvider. Transient failures are retried
// with the provider backoff profile.
func (a *Adapter) FetchRate(ctx context.Context, pair domain.CurrencyPair) (domain.ExchangeRate, error) {
	cfg := retry.ProviderConfig
	cfg.RetryIf = domain.IsRetryable

	return retry.DoWithResult(ctx, func() (domain.ExchangeRate, error) {
		return a.fetchRate(pair)
	}, cfg)
}

// fetchRate performs a single quote lookup.
func (a *Adapter) fetchRate(pair domain.CurrencyPair) (domain.ExchangeRate, error) {
	data, err := os.ReadFile(a.dataPath)
	if err != nil {
		return domain.ExchangeRate{}, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read response: %w", err))
	}

	var doc ratesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.ExchangeRate{}, domain.NewProviderError(ProviderName, fmt.Errorf("decode response: %w", err))
	}

	for _, q := range doc.Quotes {
		if q.Base == pair.Base && q.Quote == pair.Quote {
			return normalizeQuote(q)
		}
	}

	return domain.ExchangeRate{}, domain.NewProviderError(ProviderName, fmt.Errorf("no quote for pair %s", pair))
}

// Ensure Adapter implements domain.ForexProvider at compile time.
var _ domain.ForexProvider = (*Adapter)(nil)
