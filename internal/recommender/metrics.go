package recommender

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/contracts"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/oddsmath"
)

// PriceParlay computes the combined odds, probabilities and EV for a two-leg
// candidate and returns the finished ParlayBet
func PriceParlay(candidate ParlayCandidate, config contracts.RecommenderConfig) (models.ParlayBet, error) {
	first, second := candidate.First, candidate.Second

	// Combined payout is the exact product of the leg odds; correlation never
	// touches the odds, only the probability
	decimalOdds := first.DecimalOdds * second.DecimalOdds

	americanOdds, err := oddsmath.DecimalToAmerican(decimalOdds)
	if err != nil {
		return models.ParlayBet{}, fmt.Errorf("combined odds: %w", err)
	}

	implied, err := oddsmath.DecimalToImpliedProbability(decimalOdds)
	if err != nil {
		return models.ParlayBet{}, fmt.Errorf("combined odds: %w", err)
	}

	// De-vig each leg's win probability, compose, then boost for correlated
	// same-player legs. The boost is capped so a parlay never looks like a
	// near-certainty.
	deVig := config.GetDeVigFactor()
	trueProb := (first.WinProbability * deVig) * (second.WinProbability * deVig)
	trueProb *= 1.0 + candidate.CorrelationScore*config.GetCorrelationScale()

	if maxProb := config.GetMaxTrueProbability(); trueProb > maxProb {
		trueProb = maxProb
	}

	evPct := (trueProb*decimalOdds - 1.0) * 100.0

	return models.ParlayBet{
		ID:                 uuid.NewString(),
		ParlayType:         candidate.ParlayType,
		SportKey:           first.SportKey,
		Legs:               [2]models.ParlayLeg{legFromBet(first), legFromBet(second)},
		CorrelationScore:   candidate.CorrelationScore,
		DecimalOdds:        decimalOdds,
		AmericanOdds:       americanOdds,
		ImpliedProbability: implied,
		TrueProbability:    trueProb,
		EVPercent:          evPct,
		ConfidenceScore:    (first.WinProbability + second.WinProbability) / 2.0,
	}, nil
}

// legFromBet copies the single-bet fields a parlay leg carries
func legFromBet(bet models.SingleBet) models.ParlayLeg {
	return models.ParlayLeg{
		PlayerName:     bet.PlayerName,
		PlayerTeam:     bet.PlayerTeam,
		OpponentTeam:   bet.OpponentTeam,
		EventTime:      bet.EventTime,
		StatCategory:   bet.StatCategory,
		PredictedValue: bet.PredictedValue,
		Line:           bet.Line,
		Side:           bet.Side,
		BookKey:        bet.BookKey,
		AmericanOdds:   bet.AmericanOdds,
		DecimalOdds:    bet.DecimalOdds,
		Confidence:     bet.WinProbability,
		EdgePercent:    bet.EdgePercent,
		EVPercent:      bet.EVPercent,
	}
}
