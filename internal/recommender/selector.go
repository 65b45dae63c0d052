package recommender

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/contracts"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// SingleBetSelector filters, ranks and caps single-bet candidates for a slate
type SingleBetSelector struct {
	config contracts.RecommenderConfig
}

// NewSingleBetSelector creates a new single-bet selector
func NewSingleBetSelector(config contracts.RecommenderConfig) *SingleBetSelector {
	return &SingleBetSelector{
		config: config,
	}
}

// Select builds a single bet for every prediction in the pool, filters by
// confidence and edge thresholds, ranks by priority score, and enforces the
// per-day and per-event caps. An empty pool yields an empty slate, not an
// error; malformed candidates are dropped with a diagnostic.
func (s *SingleBetSelector) Select(pool []models.Prediction) []models.SingleBet {
	candidates := make([]models.SingleBet, 0, len(pool))

	for _, prediction := range pool {
		bet, err := BuildSingleBet(prediction)
		if err != nil {
			if !errors.Is(err, ErrMissingPrice) {
				fmt.Printf("[recommender] dropped candidate: %v\n", err)
			}
			continue
		}

		// Threshold filters
		if bet.WinProbability < s.config.GetMinConfidence() {
			continue
		}
		if bet.EdgePercent < s.config.GetMinEdgePercent() {
			continue
		}

		candidates = append(candidates, bet)
	}

	// Rank by priority score. The sort must be stable: ties keep input order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PriorityScore > candidates[j].PriorityScore
	})

	// Greedy cap walk. A candidate over its event cap is skipped, not a stop
	// condition; the walk ends only when the day cap fills.
	maxPerDay := s.config.GetMaxBetsPerDay()
	maxPerEvent := s.config.GetMaxBetsPerEvent()

	selected := make([]models.SingleBet, 0, maxPerDay)
	eventCounts := make(map[string]int)

	for _, bet := range candidates {
		if len(selected) >= maxPerDay {
			break
		}
		if eventCounts[bet.EventKey] >= maxPerEvent {
			continue
		}

		selected = append(selected, bet)
		eventCounts[bet.EventKey]++
	}

	return selected
}
