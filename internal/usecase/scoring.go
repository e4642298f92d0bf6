// Package usecase contains the business logic for destination
// recommendations: the scoring engine and the aggregation flow.
package usecase

import (
	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// Default scoring weights. The split is cost/forex-dominant with a small
// carbon bonus; the sum equals 1.0 for normalized scoring.
const (
	// DefaultForexWeight is the weight of the exchange-rate component.
	DefaultForexWeight = 0.35

	// DefaultCostWeight is the weight of the cost-efficiency component.
	DefaultCostWeight = 0.50

	// DefaultCarbonWeight is the weight of the sustainability component.
	DefaultCarbonWeight = 0.15
)

// Default scoring normalization baselines.
const (
	// DefaultRateBaseline is the neutral exchange rate a candidate's rate is
	// compared against.
	DefaultRateBaseline = 1.0

	// DefaultTrendInfluence scales how strongly the rate trend amplifies or
	// dampens the forex component.
	DefaultTrendInfluence = 0.5

	// DefaultRefPricePerHour is the price-per-hour at which the cost
	// component scores 0.5.
	DefaultRefPricePerHour = 100.0

	// DefaultRefCarbonKg is the per-passenger emissions at which the carbon
	// component scores 0.5.
	DefaultRefCarbonKg = 50.0

	// neutralCostScore is contributed by candidates with no fare data, so
	// missing fares neither reward nor disqualify.
	neutralCostScore = 0.5
)

// ScoreWeights holds the component weights of the scoring formula.
// Weights are configuration, not constants: the weighting is a policy choice
// and deployments tune it.
type ScoreWeights struct {
	Forex  float64
	Cost   float64
	Carbon float64
}

// Sum returns the total of the weights.
func (w ScoreWeights) Sum() float64 {
	return w.Forex + w.Cost + w.Carbon
}

// DefaultScoreWeights returns the default weight split.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Forex:  DefaultForexWeight,
		Cost:   DefaultCostWeight,
		Carbon: DefaultCarbonWeight,
	}
}

// ScoringConfig holds the weights and normalization baselines of the scorer.
type ScoringConfig struct {
	Weights         ScoreWeights
	RateBaseline    float64
	TrendInfluence  float64
	RefPricePerHour float64
	RefCarbonKg     float64
}

// DefaultScoringConfig returns the default scorer configuration.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights:         DefaultScoreWeights(),
		RateBaseline:    DefaultRateBaseline,
		TrendInfluence:  DefaultTrendInfluence,
		RefPricePerHour: DefaultRefPricePerHour,
		RefCarbonKg:     DefaultRefCarbonKg,
	}
}

// Scorer computes recommendation scores. Score is pure: identical candidates
// always produce identical scores, with no hidden state or clock dependence.
type Scorer struct {
	cfg ScoringConfig
}

// NewScorer creates a scorer, falling back to defaults for unset baselines.
func NewScorer(cfg ScoringConfig) *Scorer {
	if cfg.Weights.Sum() <= 0 {
		cfg.Weights = DefaultScoreWeights()
	}
	if cfg.RateBaseline <= 0 {
		cfg.RateBaseline = DefaultRateBaseline
	}
	if cfg.RefPricePerHour <= 0 {
		cfg.RefPricePerHour = DefaultRefPricePerHour
	}
	if cfg.RefCarbonKg <= 0 {
		cfg.RefCarbonKg = DefaultRefCarbonKg
	}
	return &Scorer{cfg: cfg}
}

// Score combines the forex, cost-efficiency, and sustainability components
// into one bounded value.
//
// Each sub-score is normalized to [0, 1] before weighting. Components with no
// data are excluded and the remaining weights renormalized, then scaled back
// to the full weight sum, so candidates with differing data completeness stay
// on one comparable scale:
//
//	Score = WeightSum × Σ(wᵢ·sᵢ present) / Σ(wᵢ present)
//
// A missing fare contributes the neutral cost score rather than dropping the
// component; missing emissions drop the carbon component entirely (reward for
// present low values, no penalty for absence).
func (s *Scorer) Score(c domain.DestinationCandidate) float64 {
	w := s.cfg.Weights

	weighted := w.Forex * s.forexScore(c)
	present := w.Forex

	weighted += w.Cost * s.costScore(c)
	present += w.Cost

	if carbon, ok := s.carbonScore(c); ok {
		weighted += w.Carbon * carbon
		present += w.Carbon
	}

	if present == 0 {
		return 0
	}
	return weighted / present * w.Sum()
}

// forexScore favors destinations where the traveler's currency is strong and
// strengthening. The rate is compared against the neutral baseline through a
// bounded monotonic map, then the trend amplifies (positive) or dampens
// (negative) the result.
func (s *Scorer) forexScore(c domain.DestinationCandidate) float64 {
	if c.ExchangeRate <= 0 {
		return 0
	}

	strength := c.ExchangeRate / s.cfg.RateBaseline
	raw := strength / (1 + strength)

	trend := clamp(c.ExchangeRateTrend, -1, 1)
	return clamp(raw*(1+s.cfg.TrendInfluence*trend), 0, 1)
}

// costScore is inversely proportional to the fare's price-per-hour.
// No fare means the neutral value, so the forex component alone can still
// rank fare-less candidates.
func (s *Scorer) costScore(c domain.DestinationCandidate) float64 {
	if c.Fare == nil {
		return neutralCostScore
	}
	return s.cfg.RefPricePerHour / (s.cfg.RefPricePerHour + c.Fare.PricePerHour())
}

// carbonScore is inversely proportional to per-passenger emissions.
// The second return value is false when the fare carries no estimate.
func (s *Scorer) carbonScore(c domain.DestinationCandidate) (float64, bool) {
	if c.Fare == nil || !c.Fare.HasEmissions() {
		return 0, false
	}
	kg, _ := c.Fare.EmissionsPerPassenger(1)
	if kg < 0 {
		kg = 0
	}
	return s.cfg.RefCarbonKg / (s.cfg.RefCarbonKg + kg), true
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
