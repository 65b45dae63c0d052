package models

import (
	"fmt"
	"time"
)

// Side is the recommended side of a player-prop line
type Side string

const (
	SideOver  Side = "OVER"
	SideUnder Side = "UNDER"
)

// Prediction is one model-generated player-prop prediction paired with the
// bookmaker's current quote. Immutable once fetched for a run.
type Prediction struct {
	PlayerName   string  `json:"player_name"`
	PlayerTeam   string  `json:"player_team"`
	OpponentTeam string  `json:"opponent_team"`

	SportKey     string    `json:"sport_key"`
	EventDate    time.Time `json:"event_date"` // Calendar date of the event
	EventTime    time.Time `json:"event_time"` // Scheduled tip-off / start time

	StatCategory   string  `json:"stat_category"` // e.g. "points", "rebounds", "assists"
	PredictedValue float64 `json:"predicted_value"`
	Line           float64 `json:"line"`

	// Confidence is the model's calibrated win probability for whichever side
	// it predicts, in [0,1]
	Confidence float64 `json:"confidence"`

	BookKey string `json:"book_key"`

	// American prices for each side; nil when the book isn't quoting that side
	OverPrice  *int `json:"over_price,omitempty"`
	UnderPrice *int `json:"under_price,omitempty"`
}

// PredictedSide returns OVER when the model projects above the line, UNDER
// otherwise. A prediction exactly on the line resolves to UNDER.
func (p Prediction) PredictedSide() Side {
	if p.PredictedValue > p.Line {
		return SideOver
	}
	return SideUnder
}

// PriceForSide returns the quoted American price for the given side, or false
// when the book isn't quoting it
func (p Prediction) PriceForSide(side Side) (int, bool) {
	if side == SideOver {
		if p.OverPrice == nil {
			return 0, false
		}
		return *p.OverPrice, true
	}
	if p.UnderPrice == nil {
		return 0, false
	}
	return *p.UnderPrice, true
}

// EventKey groups predictions that belong to the same game.
// Two distinct games between the same teams on the same date (doubleheaders)
// would collide under this key; an explicit upstream event ID would remove
// that ambiguity.
func (p Prediction) EventKey() string {
	return fmt.Sprintf("%s:%s:%s", p.EventDate.Format("2006-01-02"), p.PlayerTeam, p.OpponentTeam)
}
