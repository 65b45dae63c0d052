package recommender

import (
	"fmt"
	"strings"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// FormatSlateText renders a slate as a plain-text report. Read-only
// projection for CLI output and the report endpoint.
func FormatSlateText(slate *models.Slate) string {
	var b strings.Builder

	sport := slate.SportKey
	if sport == "" {
		sport = "all sports"
	}

	fmt.Fprintf(&b, "=== Recommendations for %s (%s) ===\n\n",
		slate.Date.Format("2006-01-02"), sport)

	b.WriteString(formatSingleBetsText(slate.SingleBets))
	b.WriteString("\n")
	b.WriteString(formatParlaysText(slate.Parlays))

	return b.String()
}

func formatSingleBetsText(bets []models.SingleBet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Single Bets (%d)\n", len(bets))

	if len(bets) == 0 {
		b.WriteString("  none\n")
		return b.String()
	}

	summary := SummarizeSingleBets(bets)
	fmt.Fprintf(&b, "  avg edge %.2f%% | avg EV %.2f%% | avg confidence %.0f%%\n",
		summary.AvgEdgePct, summary.AvgEVPct, summary.AvgConfidence*100)

	for i, bet := range bets {
		fmt.Fprintf(&b, "  %2d. %s (%s vs %s) %s %s %.1f @ %s [%s]\n",
			i+1, bet.PlayerName, bet.PlayerTeam, bet.OpponentTeam,
			bet.Side, bet.StatCategory, bet.Line,
			formatAmerican(bet.AmericanOdds), bet.BookKey)
		fmt.Fprintf(&b, "      predicted %.1f | conf %.0f%% | edge %.2f%% | EV %.2f%% | priority %.2f\n",
			bet.PredictedValue, bet.WinProbability*100,
			bet.EdgePercent, bet.EVPercent, bet.PriorityScore)
	}

	return b.String()
}

func formatParlaysText(parlays []models.ParlayBet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Parlays (%d)\n", len(parlays))

	if len(parlays) == 0 {
		b.WriteString("  none\n")
		return b.String()
	}

	summary := SummarizeParlays(parlays)
	fmt.Fprintf(&b, "  avg EV %.2f%% | avg confidence %.0f%%\n",
		summary.AvgEVPct, summary.AvgConfidence*100)

	for i, parlay := range parlays {
		fmt.Fprintf(&b, "  %2d. [%s] %s (%.2f decimal) | EV %.2f%% | conf %.0f%%",
			i+1, parlay.ParlayType, formatAmerican(parlay.AmericanOdds),
			parlay.DecimalOdds, parlay.EVPercent, parlay.ConfidenceScore*100)
		if parlay.CorrelationScore > 0 {
			fmt.Fprintf(&b, " | corr %.2f", parlay.CorrelationScore)
		}
		b.WriteString("\n")

		for _, leg := range parlay.Legs {
			fmt.Fprintf(&b, "      - %s %s %s %.1f @ %s [%s]\n",
				leg.PlayerName, leg.Side, leg.StatCategory, leg.Line,
				formatAmerican(leg.AmericanOdds), leg.BookKey)
		}
	}

	return b.String()
}

// formatAmerican prints American odds with an explicit sign (+264, -110)
func formatAmerican(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}
