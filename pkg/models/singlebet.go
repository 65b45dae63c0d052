package models

import "time"

// SingleBet is a recommendation to take one side of one player-prop line.
// Built from exactly one Prediction plus the chosen side's quoted price.
type SingleBet struct {
	PlayerName   string    `json:"player_name"`
	PlayerTeam   string    `json:"player_team"`
	OpponentTeam string    `json:"opponent_team"`
	SportKey     string    `json:"sport_key"`
	EventTime    time.Time `json:"event_time"`

	StatCategory   string  `json:"stat_category"`
	PredictedValue float64 `json:"predicted_value"`
	Line           float64 `json:"line"`
	Side           Side    `json:"side"`

	BookKey      string  `json:"book_key"`
	AmericanOdds int     `json:"american_odds"`
	DecimalOdds  float64 `json:"decimal_odds"`

	// ImpliedProbability is 1 / DecimalOdds
	ImpliedProbability float64 `json:"implied_probability"`

	// WinProbability is the model's calibrated confidence for the chosen side
	WinProbability float64 `json:"win_probability"`

	// EdgePercent = (WinProbability - ImpliedProbability) * 100
	EdgePercent float64 `json:"edge_pct"`

	// EVPercent = (WinProbability*(DecimalOdds-1) - (1-WinProbability)) * 100
	EVPercent float64 `json:"ev_pct"`

	// PriorityScore = EVPercent * WinProbability, the ranking key for selection
	PriorityScore float64 `json:"priority_score"`

	// EventKey groups bets that belong to the same game
	EventKey string `json:"event_key"`

	// Database ID (populated after write)
	ID int64 `json:"id,omitempty"`
}
