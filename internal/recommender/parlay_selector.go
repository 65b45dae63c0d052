package recommender

import (
	"fmt"
	"sort"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/contracts"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// ParlaySelector prices candidates, filters by minimum EV, ranks and caps
type ParlaySelector struct {
	config contracts.RecommenderConfig
}

// NewParlaySelector creates a new parlay selector
func NewParlaySelector(config contracts.RecommenderConfig) *ParlaySelector {
	return &ParlaySelector{
		config: config,
	}
}

// Select prices every candidate, keeps those at or above the minimum parlay
// EV, sorts by EV descending (stable, ties keep input order) and truncates to
// the result cap. A candidate whose pricing fails is dropped with a
// diagnostic; it never aborts the run.
func (s *ParlaySelector) Select(candidates []ParlayCandidate) []models.ParlayBet {
	minEVPct := s.config.GetMinParlayEV() * 100.0

	priced := make([]models.ParlayBet, 0, len(candidates))

	for _, candidate := range candidates {
		parlay, err := PriceParlay(candidate, s.config)
		if err != nil {
			fmt.Printf("[recommender] dropped parlay candidate (%s/%s + %s/%s): %v\n",
				candidate.First.PlayerName, candidate.First.StatCategory,
				candidate.Second.PlayerName, candidate.Second.StatCategory, err)
			continue
		}

		if parlay.EVPercent < minEVPct {
			continue
		}

		priced = append(priced, parlay)
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].EVPercent > priced[j].EVPercent
	})

	if maxParlays := s.config.GetMaxParlays(); len(priced) > maxParlays {
		priced = priced[:maxParlays]
	}

	return priced
}
