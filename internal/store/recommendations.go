package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// RecommendationStore writes finished slates to Postgres
type RecommendationStore struct {
	db *sql.DB
}

// NewRecommendationStore creates a new recommendation store
func NewRecommendationStore(db *sql.DB) *RecommendationStore {
	return &RecommendationStore{
		db: db,
	}
}

// WriteSlate writes a slate with its single bets, parlays and parlay legs in
// one transaction. Single-bet database IDs are populated on success.
func (s *RecommendationStore) WriteSlate(ctx context.Context, slate *models.Slate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if commit doesn't happen

	slateQuery := `
		INSERT INTO recommendation_slates (slate_date, sport_key, generated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var slateID int64
	err = tx.QueryRowContext(ctx, slateQuery,
		slate.Date, slate.SportKey, slate.GeneratedAt,
	).Scan(&slateID)
	if err != nil {
		return fmt.Errorf("failed to insert slate: %w", err)
	}

	betQuery := `
		INSERT INTO single_bet_recommendations (
			slate_id, player_name, player_team, opponent_team, sport_key,
			event_time, event_key, stat_category, predicted_value, line, side,
			book_key, american_odds, decimal_odds, implied_probability,
			win_probability, edge_pct, ev_pct, priority_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	for i := range slate.SingleBets {
		bet := &slate.SingleBets[i]
		err = tx.QueryRowContext(ctx, betQuery,
			slateID,
			bet.PlayerName,
			bet.PlayerTeam,
			bet.OpponentTeam,
			bet.SportKey,
			bet.EventTime,
			bet.EventKey,
			bet.StatCategory,
			bet.PredictedValue,
			bet.Line,
			string(bet.Side),
			bet.BookKey,
			bet.AmericanOdds,
			bet.DecimalOdds,
			bet.ImpliedProbability,
			bet.WinProbability,
			bet.EdgePercent,
			bet.EVPercent,
			bet.PriorityScore,
		).Scan(&bet.ID)
		if err != nil {
			return fmt.Errorf("failed to insert single bet: %w", err)
		}
	}

	parlayQuery := `
		INSERT INTO parlay_recommendations (
			slate_id, parlay_id, parlay_type, sport_key, correlation_score,
			decimal_odds, american_odds, implied_probability, true_probability,
			ev_pct, confidence_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	legQuery := `
		INSERT INTO parlay_recommendation_legs (
			parlay_id, leg_index, player_name, player_team, opponent_team,
			event_time, stat_category, predicted_value, line, side,
			book_key, american_odds, decimal_odds, confidence, edge_pct, ev_pct
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	for _, parlay := range slate.Parlays {
		_, err = tx.ExecContext(ctx, parlayQuery,
			slateID,
			parlay.ID,
			string(parlay.ParlayType),
			parlay.SportKey,
			parlay.CorrelationScore,
			parlay.DecimalOdds,
			parlay.AmericanOdds,
			parlay.ImpliedProbability,
			parlay.TrueProbability,
			parlay.EVPercent,
			parlay.ConfidenceScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert parlay: %w", err)
		}

		for legIndex, leg := range parlay.Legs {
			_, err = tx.ExecContext(ctx, legQuery,
				parlay.ID,
				legIndex,
				leg.PlayerName,
				leg.PlayerTeam,
				leg.OpponentTeam,
				leg.EventTime,
				leg.StatCategory,
				leg.PredictedValue,
				leg.Line,
				string(leg.Side),
				leg.BookKey,
				leg.AmericanOdds,
				leg.DecimalOdds,
				leg.Confidence,
				leg.EdgePercent,
				leg.EVPercent,
			)
			if err != nil {
				return fmt.Errorf("failed to insert parlay leg: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
