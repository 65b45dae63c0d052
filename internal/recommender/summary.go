package recommender

import (
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// SummarizeSingleBets aggregates a selected slate of single bets.
// Pure projection; an empty slate produces a zero summary.
func SummarizeSingleBets(bets []models.SingleBet) models.SingleBetSummary {
	summary := models.SingleBetSummary{
		TotalBets: len(bets),
	}

	if len(bets) == 0 {
		return summary
	}

	summary.BySport = make(map[string]int)
	summary.ByEvent = make(map[string]int)

	var sumEdge, sumEV, sumConf float64
	for _, bet := range bets {
		sumEdge += bet.EdgePercent
		sumEV += bet.EVPercent
		sumConf += bet.WinProbability
		summary.BySport[bet.SportKey]++
		summary.ByEvent[bet.EventKey]++
	}

	n := float64(len(bets))
	summary.AvgEdgePct = sumEdge / n
	summary.AvgEVPct = sumEV / n
	summary.AvgConfidence = sumConf / n

	return summary
}

// SummarizeParlays aggregates a selected slate of parlays
func SummarizeParlays(parlays []models.ParlayBet) models.ParlaySummary {
	summary := models.ParlaySummary{
		TotalParlays: len(parlays),
	}

	if len(parlays) == 0 {
		return summary
	}

	summary.ByType = make(map[models.ParlayType]int)

	var sumEV, sumConf float64
	for _, parlay := range parlays {
		sumEV += parlay.EVPercent
		sumConf += parlay.ConfidenceScore
		summary.ByType[parlay.ParlayType]++
	}

	n := float64(len(parlays))
	summary.AvgEVPct = sumEV / n
	summary.AvgConfidence = sumConf / n

	return summary
}
