package contracts

import (
	"context"
	"time"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// PredictionProvider supplies the qualifying prediction pool for a run.
// Implementations are responsible for the input contract: events within the
// target date plus two days ahead, unresolved predictions only, and at least
// one quoted price per prediction.
type PredictionProvider interface {
	// QualifyingPredictions returns the prediction pool for a date and an
	// optional sport filter ("" means all sports)
	QualifyingPredictions(ctx context.Context, date time.Time, sportKey string) ([]models.Prediction, error)
}

// CorrelationProvider looks up the static correlation between two stat
// categories for same-player, same-event parlay legs
type CorrelationProvider interface {
	// Correlation returns the coefficient for an unordered stat pair, 0 when
	// the pair isn't in the table. Must be symmetric in its arguments.
	Correlation(statA, statB string) float64
}

// RecommenderConfig defines the thresholds and caps for recommendation runs
type RecommenderConfig interface {
	// GetMinConfidence returns the minimum model win probability for a single bet
	GetMinConfidence() float64

	// GetMinEdgePercent returns the minimum single-bet edge percentage
	GetMinEdgePercent() float64

	// GetMaxBetsPerDay returns the daily single-bet cap
	GetMaxBetsPerDay() int

	// GetMaxBetsPerEvent returns the per-game single-bet cap
	GetMaxBetsPerEvent() int

	// GetMinParlayEV returns the minimum parlay EV as a decimal (0.08 = 8%)
	GetMinParlayEV() float64

	// GetMaxParlays returns the parlay result cap
	GetMaxParlays() int

	// GetDeVigFactor returns the multiplier applied to each leg's win
	// probability to strip bookmaker vig
	GetDeVigFactor() float64

	// GetCorrelationScale returns the factor scaling correlation into the
	// combined probability boost
	GetCorrelationScale() float64

	// GetMaxTrueProbability returns the hard cap on parlay true probability
	GetMaxTrueProbability() float64
}
