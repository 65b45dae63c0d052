package recommender

import (
	"errors"
	"fmt"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/oddsmath"
)

// ErrMissingPrice means the book isn't quoting the side the model picked.
// The candidate can't be built; callers skip it silently.
var ErrMissingPrice = errors.New("no quoted price for predicted side")

// BuildSingleBet turns one prediction into a single-bet candidate with its
// edge, EV and priority score. Deterministic, no I/O.
func BuildSingleBet(p models.Prediction) (models.SingleBet, error) {
	side := p.PredictedSide()

	price, ok := p.PriceForSide(side)
	if !ok {
		return models.SingleBet{}, ErrMissingPrice
	}

	decimal, err := oddsmath.AmericanToDecimal(price)
	if err != nil {
		return models.SingleBet{}, fmt.Errorf("invalid odds for %s %s %s: %w",
			p.PlayerName, p.StatCategory, side, err)
	}

	implied, err := oddsmath.DecimalToImpliedProbability(decimal)
	if err != nil {
		return models.SingleBet{}, fmt.Errorf("invalid odds for %s %s %s: %w",
			p.PlayerName, p.StatCategory, side, err)
	}

	winProb := p.Confidence

	// Edge: model probability vs the book's implied probability
	edgePct := (winProb - implied) * 100.0

	// EV per unit staked: win the net payout with p, lose the stake with 1-p
	evPct := (winProb*(decimal-1.0) - (1.0 - winProb)) * 100.0

	return models.SingleBet{
		PlayerName:         p.PlayerName,
		PlayerTeam:         p.PlayerTeam,
		OpponentTeam:       p.OpponentTeam,
		SportKey:           p.SportKey,
		EventTime:          p.EventTime,
		StatCategory:       p.StatCategory,
		PredictedValue:     p.PredictedValue,
		Line:               p.Line,
		Side:               side,
		BookKey:            p.BookKey,
		AmericanOdds:       price,
		DecimalOdds:        decimal,
		ImpliedProbability: implied,
		WinProbability:     winProb,
		EdgePercent:        edgePct,
		EVPercent:          evPct,
		PriorityScore:      evPct * winProb,
		EventKey:           p.EventKey(),
	}, nil
}
