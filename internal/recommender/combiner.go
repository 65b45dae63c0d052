package recommender

import (
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/contracts"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// ParlayCandidate is an unpriced two-leg pairing produced by the combiner.
// Metrics are attached later by the parlay selector.
type ParlayCandidate struct {
	First  models.SingleBet
	Second models.SingleBet

	ParlayType       models.ParlayType
	CorrelationScore float64
}

// ParlayCombiner enumerates compatible two-leg pairings from a selected
// single-bet slate
type ParlayCombiner struct {
	config       contracts.RecommenderConfig
	correlations contracts.CorrelationProvider
}

// NewParlayCombiner creates a combiner with an injected correlation table
func NewParlayCombiner(config contracts.RecommenderConfig, correlations contracts.CorrelationProvider) *ParlayCombiner {
	return &ParlayCombiner{
		config:       config,
		correlations: correlations,
	}
}

// Combine enumerates every unordered pair of selected bets, both same-event
// and cross-event, and keeps the compatible ones. The slate is small by
// construction (capped upstream), so the O(n²) walk is fine.
func (c *ParlayCombiner) Combine(bets []models.SingleBet) []ParlayCandidate {
	candidates := make([]ParlayCandidate, 0)

	for i := 0; i < len(bets); i++ {
		for j := i + 1; j < len(bets); j++ {
			first, second := bets[i], bets[j]

			if !compatible(first, second) {
				continue
			}

			candidate := ParlayCandidate{
				First:      first,
				Second:     second,
				ParlayType: models.ParlayTypeCrossEvent,
			}

			if first.EventKey == second.EventKey {
				candidate.ParlayType = models.ParlayTypeSameEvent

				// Correlation applies only to the same player's stats within
				// one game; different players stay at 0
				if first.PlayerName == second.PlayerName {
					candidate.CorrelationScore = c.correlations.Correlation(
						first.StatCategory, second.StatCategory)
				}
			}

			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// compatible reports whether two single bets may share a parlay:
// same bookmaker, and not the same proposition (player + stat) twice
func compatible(a, b models.SingleBet) bool {
	if a.BookKey != b.BookKey {
		return false
	}

	if a.PlayerName == b.PlayerName && a.StatCategory == b.StatCategory {
		return false
	}

	return true
}
