package basketball_nba_test

import (
	"testing"

	"github.com/agreensr/sports-prop-odds-api-sub002/sports/basketball_nba"
)

func TestCorrelationSymmetry(t *testing.T) {
	table := basketball_nba.NewCorrelationTable()

	pairs := [][2]string{
		{"points", "threes"},
		{"points", "rebounds"},
		{"rebounds", "blocks"},
		{"assists", "turnovers"},
	}

	for _, pair := range pairs {
		forward := table.Correlation(pair[0], pair[1])
		backward := table.Correlation(pair[1], pair[0])

		if forward != backward {
			t.Errorf("Correlation(%s, %s) = %f but reversed = %f",
				pair[0], pair[1], forward, backward)
		}
		if forward <= 0 || forward > 1 {
			t.Errorf("Correlation(%s, %s) = %f, want in (0,1]", pair[0], pair[1], forward)
		}
	}
}

func TestCorrelationMissDefaultsToZero(t *testing.T) {
	table := basketball_nba.NewCorrelationTable()

	if got := table.Correlation("points", "double_doubles"); got != 0 {
		t.Errorf("unknown pair should be 0, got %f", got)
	}
	if got := table.Correlation("points", "points"); got != 0 {
		t.Errorf("self pair isn't in the table, got %f", got)
	}
}

func TestCustomCorrelationTable(t *testing.T) {
	table := basketball_nba.NewCustomCorrelationTable(map[[2]string]float64{
		{"goals", "shots"}: 0.8,
	})

	if got := table.Correlation("shots", "goals"); got != 0.8 {
		t.Errorf("custom pair = %f, want 0.8", got)
	}
	if got := table.Correlation("points", "threes"); got != 0 {
		t.Errorf("custom table shouldn't inherit defaults, got %f", got)
	}
}
