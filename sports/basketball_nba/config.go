package basketball_nba

import (
	"os"
	"strconv"
)

// Config holds NBA prop recommendation thresholds and caps
type Config struct {
	MinConfidence      float64
	MinEdgePct         float64
	MaxBetsPerDay      int
	MaxBetsPerEvent    int
	MinParlayEV        float64
	MaxParlays         int
	DeVigFactor        float64
	CorrelationScale   float64
	MaxTrueProbability float64
}

// NewConfig creates a new NBA configuration with defaults and environment overrides
func NewConfig() *Config {
	return &Config{
		MinConfidence:      getEnvFloat("MIN_CONFIDENCE", 0.60),        // 60% model confidence floor
		MinEdgePct:         getEnvFloat("MIN_EDGE_PCT", 5.0),           // 5% edge floor
		MaxBetsPerDay:      getEnvInt("MAX_BETS_PER_DAY", 10),          // Daily slate cap
		MaxBetsPerEvent:    getEnvInt("MAX_BETS_PER_EVENT", 3),         // Per-game cap
		MinParlayEV:        getEnvFloat("MIN_PARLAY_EV", 0.08),         // 8% parlay EV floor
		MaxParlays:         getEnvInt("MAX_PARLAYS", 5),                // Parlay slate cap
		DeVigFactor:        getEnvFloat("DEVIG_FACTOR", 0.95),          // Per-leg vig strip
		CorrelationScale:   getEnvFloat("CORRELATION_SCALE", 0.5),      // Correlation boost scale
		MaxTrueProbability: getEnvFloat("MAX_TRUE_PROBABILITY", 0.90),  // Parlay probability ceiling
	}
}

// GetMinConfidence implements RecommenderConfig
func (c *Config) GetMinConfidence() float64 {
	return c.MinConfidence
}

// GetMinEdgePercent implements RecommenderConfig
func (c *Config) GetMinEdgePercent() float64 {
	return c.MinEdgePct
}

// GetMaxBetsPerDay implements RecommenderConfig
func (c *Config) GetMaxBetsPerDay() int {
	return c.MaxBetsPerDay
}

// GetMaxBetsPerEvent implements RecommenderConfig
func (c *Config) GetMaxBetsPerEvent() int {
	return c.MaxBetsPerEvent
}

// GetMinParlayEV implements RecommenderConfig
func (c *Config) GetMinParlayEV() float64 {
	return c.MinParlayEV
}

// GetMaxParlays implements RecommenderConfig
func (c *Config) GetMaxParlays() int {
	return c.MaxParlays
}

// GetDeVigFactor implements RecommenderConfig
func (c *Config) GetDeVigFactor() float64 {
	return c.DeVigFactor
}

// GetCorrelationScale implements RecommenderConfig
func (c *Config) GetCorrelationScale() float64 {
	return c.CorrelationScale
}

// GetMaxTrueProbability implements RecommenderConfig
func (c *Config) GetMaxTrueProbability() float64 {
	return c.MaxTrueProbability
}

// Helper functions for environment variable parsing

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
