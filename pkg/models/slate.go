package models

import "time"

// Slate is one recommendation run's full output: the ranked single bets and
// the ranked two-leg parlays built from them
type Slate struct {
	Date     time.Time `json:"date"`
	SportKey string    `json:"sport_key,omitempty"` // Empty when the run spans all sports

	SingleBets []SingleBet `json:"single_bets"`
	Parlays    []ParlayBet `json:"parlays"`

	GeneratedAt time.Time `json:"generated_at"`
}
