package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// PredictionStore reads qualifying prop predictions from Postgres
type PredictionStore struct {
	db *sql.DB
}

// NewPredictionStore creates a new prediction store
func NewPredictionStore(db *sql.DB) *PredictionStore {
	return &PredictionStore{
		db: db,
	}
}

// scanWindowDays is how far past the target date the scan reaches
const scanWindowDays = 2

// QualifyingPredictions implements PredictionProvider: unresolved predictions
// with at least one quoted price for events on the target date through two
// days ahead, optionally restricted to one sport
func (s *PredictionStore) QualifyingPredictions(ctx context.Context, date time.Time, sportKey string) ([]models.Prediction, error) {
	windowStart := date.Truncate(24 * time.Hour)
	windowEnd := windowStart.AddDate(0, 0, scanWindowDays+1)

	query := `
		SELECT player_name, player_team, opponent_team,
		       sport_key, event_date, event_time,
		       stat_category, predicted_value, line, confidence,
		       book_key, over_price, under_price
		FROM prop_predictions
		WHERE event_date >= $1
		  AND event_date < $2
		  AND resolved_at IS NULL
		  AND (over_price IS NOT NULL OR under_price IS NOT NULL)
		  AND ($3 = '' OR sport_key = $3)
		ORDER BY event_time, player_name, stat_category
	`

	rows, err := s.db.QueryContext(ctx, query, windowStart, windowEnd, sportKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		var overPrice, underPrice sql.NullInt64

		err := rows.Scan(
			&p.PlayerName,
			&p.PlayerTeam,
			&p.OpponentTeam,
			&p.SportKey,
			&p.EventDate,
			&p.EventTime,
			&p.StatCategory,
			&p.PredictedValue,
			&p.Line,
			&p.Confidence,
			&p.BookKey,
			&overPrice,
			&underPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}

		if overPrice.Valid {
			price := int(overPrice.Int64)
			p.OverPrice = &price
		}
		if underPrice.Valid {
			price := int(underPrice.Int64)
			p.UnderPrice = &price
		}

		predictions = append(predictions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating predictions: %w", err)
	}

	return predictions, nil
}
