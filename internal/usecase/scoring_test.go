package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// scoringCandidate builds a candidate with a fare for scoring tests.
func scoringCandidate(rate, trend float64, fare *domain.FlightFare) domain.DestinationCandidate {
	return domain.DestinationCandidate{
		DepartureAirport:  "JFK",
		ArrivalAirport:    "CDG",
		City:              "Paris",
		Country:           "France",
		ExchangeRate:      rate,
		ExchangeRateTrend: trend,
		Fare:              fare,
	}
}

func fareOf(price float64, durationMinutes int) *domain.FlightFare {
	f := domain.NewFlightFare(price, "USD", []string{"Test Air"}, durationMinutes)
	return &f
}

func fareWithCarbon(price float64, durationMinutes int, carbonKg float64) *domain.FlightFare {
	f := fareOf(price, durationMinutes)
	f.CarbonKg = &carbonKg
	return f
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())
	c := scoringCandidate(0.92, 0.1, fareWithCarbon(600, 420, 510))

	first := scorer.Score(c)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(c), "scoring must be a pure function of the candidate")
	}
}

func TestScorer_Bounded(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	candidates := []domain.DestinationCandidate{
		scoringCandidate(0.0001, -1, fareOf(100000, 60)),
		scoringCandidate(1000, 1, fareWithCarbon(1, 1200, 0.1)),
		scoringCandidate(1, 0, nil),
		scoringCandidate(0, 0, nil),
		scoringCandidate(-5, 0.5, fareOf(600, 420)),
	}

	maxScore := DefaultScoreWeights().Sum()
	for _, c := range candidates {
		score := scorer.Score(c)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, maxScore)
	}
}

func TestScorer_FavorsStrongerRate(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())
	fare := fareOf(600, 420)

	weak := scorer.Score(scoringCandidate(0.78, 0, fare))
	strong := scorer.Score(scoringCandidate(0.92, 0, fare))

	assert.Greater(t, strong, weak, "a stronger traveler currency must score higher, all else equal")
}

func TestScorer_TrendAmplifiesAndDampens(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())
	fare := fareOf(600, 420)

	falling := scorer.Score(scoringCandidate(0.92, -0.3, fare))
	flat := scorer.Score(scoringCandidate(0.92, 0, fare))
	rising := scorer.Score(scoringCandidate(0.92, 0.3, fare))

	assert.Greater(t, rising, flat)
	assert.Greater(t, flat, falling)
}

func TestScorer_FavorsCheaperFare(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	cheap := scorer.Score(scoringCandidate(1, 0, fareOf(400, 420)))
	expensive := scorer.Score(scoringCandidate(1, 0, fareOf(900, 420)))

	assert.Greater(t, cheap, expensive)
}

func TestScorer_FavorsLowerEmissions(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	clean := scorer.Score(scoringCandidate(1, 0, fareWithCarbon(600, 420, 200)))
	dirty := scorer.Score(scoringCandidate(1, 0, fareWithCarbon(600, 420, 900)))

	assert.Greater(t, clean, dirty)
}

func TestScorer_MissingFareUsesNeutralCost(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	// A fare-less candidate with a strong rate still outranks a fare-less
	// candidate with a weak rate: the forex component alone decides.
	strong := scorer.Score(scoringCandidate(1.4, 0, nil))
	weak := scorer.Score(scoringCandidate(0.6, 0, nil))
	assert.Greater(t, strong, weak)

	// The neutral cost score means a fare-less candidate ranks between an
	// expensive and a cheap fare at the same rate.
	fareless := scorer.Score(scoringCandidate(1, 0, nil))
	cheap := scorer.Score(scoringCandidate(1, 0, fareOf(100, 420)))
	expensive := scorer.Score(scoringCandidate(1, 0, fareOf(2000, 420)))
	assert.Greater(t, cheap, fareless)
	assert.Greater(t, fareless, expensive)
}

func TestScorer_MissingEmissionsIsNoPenalty(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	// Very low emissions raise the score above the carbon-less rendition of
	// the same candidate; very high emissions drop it below.
	noCarbon := scorer.Score(scoringCandidate(1, 0, fareOf(600, 420)))
	lowCarbon := scorer.Score(scoringCandidate(1, 0, fareWithCarbon(600, 420, 5)))
	highCarbon := scorer.Score(scoringCandidate(1, 0, fareWithCarbon(600, 420, 2000)))

	assert.Greater(t, lowCarbon, noCarbon)
	assert.Less(t, highCarbon, noCarbon)
}

func TestScorer_ZeroOrNegativeRateScoresZeroForex(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	// With no fare and no rate only the neutral cost component remains.
	zero := scorer.Score(scoringCandidate(0, 0.5, nil))
	negative := scorer.Score(scoringCandidate(-1, 0.5, nil))
	assert.Equal(t, zero, negative)

	positive := scorer.Score(scoringCandidate(0.1, 0.5, nil))
	assert.Greater(t, positive, zero)
}

func TestScorer_KnownScenario(t *testing.T) {
	scorer := NewScorer(DefaultScoringConfig())

	// Candidate A: favorable rate and trend, cheaper and faster flight.
	a := scorer.Score(scoringCandidate(0.92, 0.1, fareOf(600, 420)))
	// Candidate B: weaker rate, falling trend, pricier and slower flight.
	b := scorer.Score(scoringCandidate(0.78, -0.2, fareOf(700, 480)))

	assert.InDelta(t, 0.5239, a, 0.001)
	assert.InDelta(t, 0.4761, b, 0.001)
	assert.Greater(t, a, b)
}

func TestNewScorer_DefaultsForUnsetFields(t *testing.T) {
	scorer := NewScorer(ScoringConfig{})

	assert.Equal(t, DefaultScoreWeights(), scorer.cfg.Weights)
	assert.Equal(t, DefaultRateBaseline, scorer.cfg.RateBaseline)
	assert.Equal(t, DefaultRefPricePerHour, scorer.cfg.RefPricePerHour)
	assert.Equal(t, DefaultRefCarbonKg, scorer.cfg.RefCarbonKg)
}

func TestScoreWeights_Sum(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultScoreWeights().Sum(), 1e-9)
	assert.InDelta(t, 0.6, ScoreWeights{Forex: 0.1, Cost: 0.2, Carbon: 0.3}.Sum(), 1e-9)
}
