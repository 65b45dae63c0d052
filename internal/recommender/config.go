package recommender

import (
	"fmt"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/contracts"
)

// ValidateConfig rejects threshold combinations that would make a run
// meaningless. This is the only hard failure in the engine; every other
// problem is recovered per candidate.
func ValidateConfig(cfg contracts.RecommenderConfig) error {
	if c := cfg.GetMinConfidence(); c < 0 || c > 1 {
		return fmt.Errorf("invalid config: min confidence %.3f must be in [0,1]", c)
	}

	if e := cfg.GetMinEdgePercent(); e < 0 {
		return fmt.Errorf("invalid config: min edge %.2f%% must be >= 0", e)
	}

	if n := cfg.GetMaxBetsPerDay(); n <= 0 {
		return fmt.Errorf("invalid config: max bets per day %d must be positive", n)
	}

	if n := cfg.GetMaxBetsPerEvent(); n <= 0 {
		return fmt.Errorf("invalid config: max bets per event %d must be positive", n)
	}

	if ev := cfg.GetMinParlayEV(); ev < 0 || ev > 1 {
		return fmt.Errorf("invalid config: min parlay EV %.3f must be in [0,1]", ev)
	}

	if n := cfg.GetMaxParlays(); n <= 0 {
		return fmt.Errorf("invalid config: max parlays %d must be positive", n)
	}

	if f := cfg.GetDeVigFactor(); f <= 0 || f > 1 {
		return fmt.Errorf("invalid config: de-vig factor %.3f must be in (0,1]", f)
	}

	if s := cfg.GetCorrelationScale(); s < 0 {
		return fmt.Errorf("invalid config: correlation scale %.3f must be >= 0", s)
	}

	if p := cfg.GetMaxTrueProbability(); p <= 0 || p > 1 {
		return fmt.Errorf("invalid config: max true probability %.3f must be in (0,1]", p)
	}

	return nil
}
