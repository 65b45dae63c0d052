package models

import "time"

// ParlayType classifies a two-leg parlay by where its legs come from
type ParlayType string

const (
	ParlayTypeSameEvent  ParlayType = "same_event"  // Both legs in the same game
	ParlayTypeCrossEvent ParlayType = "cross_event" // Legs in different games
)

// ParlayLeg is a read-only copy of a SingleBet's fields embedded in a parlay
type ParlayLeg struct {
	PlayerName   string    `json:"player_name"`
	PlayerTeam   string    `json:"player_team"`
	OpponentTeam string    `json:"opponent_team"`
	EventTime    time.Time `json:"event_time"`

	StatCategory   string  `json:"stat_category"`
	PredictedValue float64 `json:"predicted_value"`
	Line           float64 `json:"line"`
	Side           Side    `json:"side"`

	BookKey      string  `json:"book_key"`
	AmericanOdds int     `json:"american_odds"`
	DecimalOdds  float64 `json:"decimal_odds"`

	Confidence  float64 `json:"confidence"`
	EdgePercent float64 `json:"edge_pct"`
	EVPercent   float64 `json:"ev_pct"`
}

// ParlayBet is a combined wager on exactly two single bets; it pays only when
// both legs win
type ParlayBet struct {
	ID         string     `json:"id"`
	ParlayType ParlayType `json:"parlay_type"`
	SportKey   string     `json:"sport_key"`

	Legs [2]ParlayLeg `json:"legs"`

	// CorrelationScore is nonzero only for same-event legs on the same player,
	// looked up from the sport's static stat-pair table
	CorrelationScore float64 `json:"correlation_score"`

	// DecimalOdds is the exact product of the two legs' decimal odds
	DecimalOdds  float64 `json:"decimal_odds"`
	AmericanOdds int     `json:"american_odds"`

	// ImpliedProbability is 1 / DecimalOdds
	ImpliedProbability float64 `json:"implied_probability"`

	// TrueProbability is the product of each leg's de-vigged win probability,
	// boosted for correlation and capped
	TrueProbability float64 `json:"true_probability"`

	// EVPercent = (TrueProbability*DecimalOdds - 1) * 100
	EVPercent float64 `json:"ev_pct"`

	// ConfidenceScore is the arithmetic mean of the two legs' confidence
	ConfidenceScore float64 `json:"confidence_score"`
}
