package recommender

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/contracts"
	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// SlateWriter persists a finished slate
type SlateWriter interface {
	WriteSlate(ctx context.Context, slate *models.Slate) error
}

// SlatePublisher fans a finished slate out to downstream consumers
type SlatePublisher interface {
	PublishSlate(ctx context.Context, slate *models.Slate) error
}

// Engine orchestrates a recommendation run: fetch the qualifying pool, build
// and select single bets, combine and select parlays, then persist and
// publish. The pipeline itself is pure; all I/O sits at the edges.
type Engine struct {
	provider  contracts.PredictionProvider
	config    contracts.RecommenderConfig
	writer    SlateWriter
	publisher SlatePublisher

	selector       *SingleBetSelector
	combiner       *ParlayCombiner
	parlaySelector *ParlaySelector

	// Metrics
	runCount    int64
	betCount    int64
	parlayCount int64
	mu          sync.Mutex
}

// NewEngine validates the configuration and wires the pipeline. writer and
// publisher may be nil for callers that only want the in-memory slate.
func NewEngine(
	provider contracts.PredictionProvider,
	correlations contracts.CorrelationProvider,
	config contracts.RecommenderConfig,
	writer SlateWriter,
	publisher SlatePublisher,
) (*Engine, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return &Engine{
		provider:       provider,
		config:         config,
		writer:         writer,
		publisher:      publisher,
		selector:       NewSingleBetSelector(config),
		combiner:       NewParlayCombiner(config, correlations),
		parlaySelector: NewParlaySelector(config),
	}, nil
}

// BuildSlate runs the pure pipeline over an in-memory prediction pool.
// Identical inputs always produce an identically ordered slate; safe to call
// concurrently for different (date, sport) runs.
func (e *Engine) BuildSlate(date time.Time, sportKey string, pool []models.Prediction) *models.Slate {
	singles := e.selector.Select(pool)
	candidates := e.combiner.Combine(singles)
	parlays := e.parlaySelector.Select(candidates)

	return &models.Slate{
		Date:        date,
		SportKey:    sportKey,
		SingleBets:  singles,
		Parlays:     parlays,
		GeneratedAt: time.Now(),
	}
}

// PreviewSlate fetches the qualifying pool and runs the pipeline without
// persisting or publishing anything
func (e *Engine) PreviewSlate(ctx context.Context, date time.Time, sportKey string) (*models.Slate, error) {
	pool, err := e.provider.QualifyingPredictions(ctx, date, sportKey)
	if err != nil {
		return nil, fmt.Errorf("fetch predictions: %w", err)
	}

	return e.BuildSlate(date, sportKey, pool), nil
}

// GenerateSlate fetches the qualifying pool and runs the full pipeline,
// persisting and publishing the result when a writer/publisher is wired
func (e *Engine) GenerateSlate(ctx context.Context, date time.Time, sportKey string) (*models.Slate, error) {
	pool, err := e.provider.QualifyingPredictions(ctx, date, sportKey)
	if err != nil {
		return nil, fmt.Errorf("fetch predictions: %w", err)
	}

	slate := e.BuildSlate(date, sportKey, pool)

	if e.writer != nil {
		if err := e.writer.WriteSlate(ctx, slate); err != nil {
			return nil, fmt.Errorf("write slate: %w", err)
		}
	}

	if e.publisher != nil {
		if err := e.publisher.PublishSlate(ctx, slate); err != nil {
			return nil, fmt.Errorf("publish slate: %w", err)
		}
	}

	e.recordRun(len(slate.SingleBets), len(slate.Parlays))

	fmt.Printf("✓ Slate generated: date=%s sport=%s singles=%d parlays=%d\n",
		date.Format("2006-01-02"), sportKey, len(slate.SingleBets), len(slate.Parlays))

	return slate, nil
}

// recordRun updates run metrics
func (e *Engine) recordRun(bets, parlays int) {
	e.mu.Lock()
	e.runCount++
	e.betCount += int64(bets)
	e.parlayCount += int64(parlays)
	e.mu.Unlock()
}

// GetMetrics returns cumulative run metrics
func (e *Engine) GetMetrics() (runs, bets, parlays int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runCount, e.betCount, e.parlayCount
}
