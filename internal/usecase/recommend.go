package usecase

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/cache"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/catalog"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/fetch"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/logger"
	"github.com/travel-deals/travel-deal-recommendation-service/internal/infrastructure/timeutil"
)

// Default configuration values.
const (
	DefaultGlobalTimeout     = 10 * time.Second
	DefaultProviderTimeout   = 2 * time.Second
	DefaultMaxResults        = 20
	DefaultForexTTL          = 1 * time.Hour
	DefaultFlightTTL         = 12 * time.Hour
	DefaultRecommendationTTL = 30 * time.Minute
)

// RecommendUseCase defines the interface for recommendation operations.
type RecommendUseCase interface {
	// Recommend resolves forex and fare data for the candidate destinations
	// reachable from the query's departure airport and returns them ranked.
	// The source reports whether the assembled response came from cache.
	Recommend(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error)
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout     time.Duration
	ProviderTimeout   time.Duration
	MaxResults        int
	ForexTTL          time.Duration
	FlightTTL         time.Duration
	RecommendationTTL time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:     DefaultGlobalTimeout,
		ProviderTimeout:   DefaultProviderTimeout,
		MaxResults:        DefaultMaxResults,
		ForexTTL:          DefaultForexTTL,
		FlightTTL:         DefaultFlightTTL,
		RecommendationTTL: DefaultRecommendationTTL,
	}
}

// recommendUseCase implements RecommendUseCase.
type recommendUseCase struct {
	catalog *catalog.Catalog
	orch    *fetch.Orchestrator
	forex   domain.ForexProvider
	fares   domain.FareProvider
	scorer  *Scorer
	clock   timeutil.Clock
	log     *logger.Logger
	cfg     Config
}

// NewRecommendUseCase creates a RecommendUseCase. If config is nil, defaults
// are used; zero fields fall back individually.
func NewRecommendUseCase(cat *catalog.Catalog, orch *fetch.Orchestrator, forex domain.ForexProvider, fares domain.FareProvider, scorer *Scorer, clock timeutil.Clock, log *logger.Logger, config *Config) RecommendUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.ProviderTimeout > 0 {
			cfg.ProviderTimeout = config.ProviderTimeout
		}
		if config.MaxResults > 0 {
			cfg.MaxResults = config.MaxResults
		}
		if config.ForexTTL > 0 {
			cfg.ForexTTL = config.ForexTTL
		}
		if config.FlightTTL > 0 {
			cfg.FlightTTL = config.FlightTTL
		}
		if config.RecommendationTTL > 0 {
			cfg.RecommendationTTL = config.RecommendationTTL
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &recommendUseCase{
		catalog: cat,
		orch:    orch,
		forex:   forex,
		fares:   fares,
		scorer:  scorer,
		clock:   clock,
		log:     log,
		cfg:     cfg,
	}
}

// Recommend implements RecommendUseCase. The assembled response is itself
// cached under a recommendation-domain key; the caller's limit is applied
// after resolution so one cached response serves every limit.
func (uc *recommendUseCase) Recommend(ctx context.Context, query domain.RecommendationQuery) (*domain.RecommendationsResponse, fetch.Source, error) {
	query.Normalize()
	query.SetDefaults()
	if err := query.Validate(); err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GlobalTimeout)
	defer cancel()

	key := cache.RecommendationKey(query)
	resp, source, err := fetch.ResolveJSON(ctx, uc.orch, key, cache.DomainRecommendation, key, uc.cfg.RecommendationTTL,
		func(ctx context.Context) (domain.RecommendationsResponse, error) {
			return uc.build(ctx, query)
		})
	if err != nil {
		return nil, source, err
	}

	limit := query.Limit
	if limit <= 0 || limit > uc.cfg.MaxResults {
		limit = uc.cfg.MaxResults
	}
	if len(resp.Recommendations) > limit {
		resp.Recommendations = resp.Recommendations[:limit]
	}

	return &resp, source, nil
}

// build assembles a fresh response: fan out forex and fare resolution,
// score, rank, truncate.
func (uc *recommendUseCase) build(ctx context.Context, query domain.RecommendationQuery) (domain.RecommendationsResponse, error) {
	destinations := uc.catalog.From(query.DepartureAirport)

	// An empty candidate set is a valid empty result, not an error.
	if len(destinations) == 0 {
		return domain.NewRecommendationsResponse(uuid.NewString(), query.BaseCurrency, query.DepartureAirport, nil, uc.clock.Now()), nil
	}

	rates, err := uc.resolveRates(ctx, query.BaseCurrency, destinations)
	if err != nil {
		return domain.RecommendationsResponse{}, err
	}

	fares := uc.resolveFares(ctx, query, destinations)

	candidates := make([]domain.DestinationCandidate, 0, len(destinations))
	for i, d := range destinations {
		rate := rates[d.Currency]
		candidates = append(candidates, domain.DestinationCandidate{
			DepartureAirport:  query.DepartureAirport,
			ArrivalAirport:    d.Airport,
			City:              d.City,
			Country:           d.Country,
			ExchangeRate:      rate.Rate,
			ExchangeRateTrend: rate.Trend,
			Fare:              fares[i],
		})
	}

	recs := RankCandidates(uc.scorer, candidates)
	if len(recs) > uc.cfg.MaxResults {
		recs = recs[:uc.cfg.MaxResults]
	}

	return domain.NewRecommendationsResponse(uuid.NewString(), query.BaseCurrency, query.DepartureAirport, recs, uc.clock.Now()), nil
}

// resolveRates fetches the base->destination exchange rate for every distinct
// destination currency through the cache-aside layer. A forex failure is
// fatal for the request: without rates there is nothing to score against.
func (uc *recommendUseCase) resolveRates(ctx context.Context, baseCurrency string, destinations []catalog.Destination) (map[string]domain.ExchangeRate, error) {
	currencies := make([]string, 0, len(destinations))
	seen := make(map[string]struct{}, len(destinations))
	for _, d := range destinations {
		if _, dup := seen[d.Currency]; dup {
			continue
		}
		seen[d.Currency] = struct{}{}
		currencies = append(currencies, d.Currency)
	}

	type rateResult struct {
		currency string
		rate     domain.ExchangeRate
		err      error
	}

	results := make(chan rateResult, len(currencies))
	var wg sync.WaitGroup

	for _, currency := range currencies {
		wg.Add(1)
		go func(currency string) {
			defer wg.Done()

			// The identity pair needs no provider.
			if currency == baseCurrency {
				results <- rateResult{currency: currency, rate: domain.ExchangeRate{
					Pair: domain.NewCurrencyPair(baseCurrency, currency),
					Rate: 1.0,
				}}
				return
			}

			pair := domain.NewCurrencyPair(baseCurrency, currency)
			rate, _, err := fetch.ResolveJSON(ctx, uc.orch, cache.ForexKey(pair), cache.DomainForex, pair.String(), uc.cfg.ForexTTL,
				func(ctx context.Context) (domain.ExchangeRate, error) {
					ctx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
					defer cancel()
					return uc.forex.FetchRate(ctx, pair)
				})
			results <- rateResult{currency: currency, rate: rate, err: err}
		}(currency)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	rates := make(map[string]domain.ExchangeRate, len(currencies))
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		rates[r.currency] = r.rate
	}

	return rates, nil
}

// resolveFares fetches a fare per destination through the cache-aside layer.
// Fare failures degrade the destination to fare-less scoring instead of
// failing the request. The returned slice is index-aligned with destinations.
func (uc *recommendUseCase) resolveFares(ctx context.Context, query domain.RecommendationQuery, destinations []catalog.Destination) []*domain.FlightFare {
	fares := make([]*domain.FlightFare, len(destinations))
	var wg sync.WaitGroup

	for i, d := range destinations {
		wg.Add(1)
		go func(i int, d catalog.Destination) {
			defer wg.Done()

			trip := domain.TripParams{
				DepartureAirport: query.DepartureAirport,
				ArrivalAirport:   d.Airport,
				OutboundDate:     query.OutboundDate,
				ReturnDate:       query.ReturnDate,
			}

			fare, _, err := fetch.ResolveJSON(ctx, uc.orch, cache.FlightKey(trip), cache.DomainFlight, cache.FlightKey(trip), uc.cfg.FlightTTL,
				func(ctx context.Context) (*domain.FlightFare, error) {
					ctx, cancel := context.WithTimeout(ctx, uc.cfg.ProviderTimeout)
					defer cancel()
					return uc.fares.FetchFare(ctx, trip)
				})
			if err != nil {
				uc.log.Warn().
					Str("route", trip.DepartureAirport+"-"+trip.ArrivalAirport).
					Err(err).
					Msg("Fare resolution failed, scoring without fare")
				return
			}
			fares[i] = fare
		}(i, d)
	}

	wg.Wait()
	return fares
}

// RankCandidates scores every candidate and returns them ordered by score
// descending. Ties break on lower fare price (fare-less candidates last
// within a tie), then on arrival airport code, so the ordering is fully
// deterministic. The input slice is not mutated.
func RankCandidates(scorer *Scorer, candidates []domain.DestinationCandidate) []domain.DestinationRecommendation {
	recs := make([]domain.DestinationRecommendation, len(candidates))
	for i, c := range candidates {
		recs[i] = domain.DestinationRecommendation{
			DestinationCandidate: c,
			Score:                scorer.Score(c),
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		pi, pj := farePrice(recs[i].Fare), farePrice(recs[j].Fare)
		if pi != pj {
			return pi < pj
		}
		return recs[i].ArrivalAirport < recs[j].ArrivalAirport
	})

	return recs
}

// farePrice returns the fare price for tie-breaking; absent fares sort after
// any priced fare.
func farePrice(f *domain.FlightFare) float64 {
	if f == nil {
		return math.Inf(1)
	}
	return f.Price
}

// Ensure recommendUseCase implements RecommendUseCase at compile time.
var _ RecommendUseCase = (*recommendUseCase)(nil)
