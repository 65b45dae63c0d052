package models

// SingleBetSummary aggregates a selected single-bet slate.
// Pure projection over the output list, no business rules.
type SingleBetSummary struct {
	TotalBets     int     `json:"total_bets"`
	AvgEdgePct    float64 `json:"avg_edge_pct"`
	AvgEVPct      float64 `json:"avg_ev_pct"`
	AvgConfidence float64 `json:"avg_confidence"`

	BySport map[string]int `json:"by_sport,omitempty"`
	ByEvent map[string]int `json:"by_event,omitempty"`
}

// ParlaySummary aggregates a selected parlay slate
type ParlaySummary struct {
	TotalParlays  int     `json:"total_parlays"`
	AvgEVPct      float64 `json:"avg_ev_pct"`
	AvgConfidence float64 `json:"avg_confidence"`

	ByType map[ParlayType]int `json:"by_type,omitempty"`
}
