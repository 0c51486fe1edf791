package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Michaelmpofo/helpmate-lite/internal/modules/chat/domain"
)

// RedisTranscriptRepository stores each conversation as a Redis list of
// JSON-encoded messages, appended in send order.
type RedisTranscriptRepository struct {
	client *redis.Client
}

func NewRedisTranscriptRepository(client *redis.Client) *RedisTranscriptRepository {
	return &RedisTranscriptRepository{client: client}
}

func (r *RedisTranscriptRepository) Append(ctx context.Context, key string, msg domain.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding chat message: %w", err)
	}
	if err := r.client.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("appending chat message: %w", err)
	}
	return nil
}

func (r *RedisTranscriptRepository) List(ctx context.Context, key string) ([]domain.Message, error) {
	raw, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading chat transcript: %w", err)
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, item := range raw {
		var msg domain.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			// A corrupt entry should not hide the rest of the transcript.
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
