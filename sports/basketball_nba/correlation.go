package basketball_nba

// statPair is an unordered pair of stat categories
type statPair struct {
	a, b string
}

// CorrelationTable looks up static correlations between a player's stat
// categories within one game. Immutable after construction; inject into the
// parlay combiner so tests can substitute alternate tables.
type CorrelationTable struct {
	pairs map[statPair]float64
}

// NewCorrelationTable creates the default NBA stat-pair correlation table
func NewCorrelationTable() *CorrelationTable {
	return newCorrelationTable(map[statPair]float64{
		{"points", "threes"}:      0.55,
		{"points", "field_goals"}: 0.60,
		{"points", "free_throws"}: 0.45,
		{"points", "minutes"}:     0.40,
		{"points", "assists"}:     0.25,
		{"points", "rebounds"}:    0.20,
		{"rebounds", "blocks"}:    0.30,
		{"rebounds", "minutes"}:   0.35,
		{"assists", "minutes"}:    0.35,
		{"assists", "turnovers"}:  0.30,
		{"steals", "blocks"}:      0.15,
		{"threes", "field_goals"}: 0.50,
	})
}

// NewCustomCorrelationTable creates a table from caller-supplied pairs.
// Symmetry is handled by the lookup, so each pair needs one entry.
func NewCustomCorrelationTable(pairs map[[2]string]float64) *CorrelationTable {
	normalized := make(map[statPair]float64, len(pairs))
	for pair, score := range pairs {
		normalized[statPair{pair[0], pair[1]}] = score
	}
	return newCorrelationTable(normalized)
}

func newCorrelationTable(pairs map[statPair]float64) *CorrelationTable {
	return &CorrelationTable{pairs: pairs}
}

// Correlation implements CorrelationProvider. Returns 0 for pairs not in the
// table; symmetric in its arguments.
func (t *CorrelationTable) Correlation(statA, statB string) float64 {
	if score, ok := t.pairs[statPair{statA, statB}]; ok {
		return score
	}
	if score, ok := t.pairs[statPair{statB, statA}]; ok {
		return score
	}
	return 0
}
