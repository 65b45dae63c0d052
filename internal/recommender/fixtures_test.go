package recommender_test

import (
	"time"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
	"github.com/agreensr/sports-prop-odds-api-sub002/sports/basketball_nba"
)

// testConfig mirrors the NBA defaults but is tweakable per test
type testConfig struct {
	minConfidence   float64
	minEdgePct      float64
	maxBetsPerDay   int
	maxBetsPerEvent int
	minParlayEV     float64
	maxParlays      int
	deVigFactor     float64
	corrScale       float64
	maxTrueProb     float64
}

func defaultTestConfig() *testConfig {
	return &testConfig{
		minConfidence:   0.60,
		minEdgePct:      5.0,
		maxBetsPerDay:   10,
		maxBetsPerEvent: 3,
		minParlayEV:     0.08,
		maxParlays:      5,
		deVigFactor:     0.95,
		corrScale:       0.5,
		maxTrueProb:     0.90,
	}
}

func (c *testConfig) GetMinConfidence() float64      { return c.minConfidence }
func (c *testConfig) GetMinEdgePercent() float64     { return c.minEdgePct }
func (c *testConfig) GetMaxBetsPerDay() int          { return c.maxBetsPerDay }
func (c *testConfig) GetMaxBetsPerEvent() int        { return c.maxBetsPerEvent }
func (c *testConfig) GetMinParlayEV() float64        { return c.minParlayEV }
func (c *testConfig) GetMaxParlays() int             { return c.maxParlays }
func (c *testConfig) GetDeVigFactor() float64        { return c.deVigFactor }
func (c *testConfig) GetCorrelationScale() float64   { return c.corrScale }
func (c *testConfig) GetMaxTrueProbability() float64 { return c.maxTrueProb }

var testDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

// predictionFixture creates a test Prediction with sensible defaults
func predictionFixture(overrides ...func(*models.Prediction)) models.Prediction {
	overPrice := -110
	underPrice := -110

	p := models.Prediction{
		PlayerName:     "Jayson Tatum",
		PlayerTeam:     "BOS",
		OpponentTeam:   "NYK",
		SportKey:       "basketball_nba",
		EventDate:      testDate,
		EventTime:      testDate.Add(19 * time.Hour),
		StatCategory:   "points",
		PredictedValue: 30.5,
		Line:           27.5,
		Confidence:     0.68,
		BookKey:        "fanduel",
		OverPrice:      &overPrice,
		UnderPrice:     &underPrice,
	}

	for _, override := range overrides {
		override(&p)
	}

	return p
}

// withPlayer sets the player and stat for a fixture
func withPlayer(name, team, opponent, stat string) func(*models.Prediction) {
	return func(p *models.Prediction) {
		p.PlayerName = name
		p.PlayerTeam = team
		p.OpponentTeam = opponent
		p.StatCategory = stat
	}
}

// withConfidence sets the model confidence
func withConfidence(confidence float64) func(*models.Prediction) {
	return func(p *models.Prediction) {
		p.Confidence = confidence
	}
}

// withPrices sets both side prices
func withPrices(over, under int) func(*models.Prediction) {
	return func(p *models.Prediction) {
		p.OverPrice = &over
		p.UnderPrice = &under
	}
}

// nbaCorrelations is the production correlation table
var nbaCorrelations = basketball_nba.NewCorrelationTable()
