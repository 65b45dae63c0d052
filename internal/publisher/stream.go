package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/agreensr/sports-prop-odds-api-sub002/pkg/models"
)

// StreamPublisher publishes finished slates to Redis Streams
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// PublishSlate publishes a slate to the sport-specific stream and the global
// recommendations stream
func (p *StreamPublisher) PublishSlate(ctx context.Context, slate *models.Slate) error {
	slateJSON, err := json.Marshal(slate)
	if err != nil {
		return fmt.Errorf("failed to marshal slate: %w", err)
	}

	values := map[string]interface{}{
		"slate": string(slateJSON),
		"date":  slate.Date.Format("2006-01-02"),
	}

	if slate.SportKey != "" {
		streamKey := fmt.Sprintf("recommendations.%s", slate.SportKey)
		if err := p.publish(ctx, streamKey, values); err != nil {
			return err
		}
	}

	// Global stream for consumers that want every sport
	return p.publish(ctx, "recommendations", values)
}

func (p *StreamPublisher) publish(ctx context.Context, streamKey string, values map[string]interface{}) error {
	_, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: values,
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to stream %s: %w", streamKey, err)
	}

	return nil
}
