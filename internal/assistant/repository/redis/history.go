package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"canvas-assistant/internal/model"
)

// Append pushes ex, trims the list to the newest maxHistory entries and
// refreshes the TTL in one transaction.
func (r *implRepository) Append(ctx context.Context, sessionID string, ex model.Exchange) error {
	raw, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("redis history repository: failed to encode exchange: %w", err)
	}

	key := r.key(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, key, raw)
		pipe.LTrim(ctx, key, -r.maxHistory, -1)
		pipe.Expire(ctx, key, r.opts.TTL)
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "redis history repository: append to %s failed: %v", key, err)
		return fmt.Errorf("redis history repository: failed to append: %w", err)
	}
	return nil
}

// List skips entries that no longer decode.
func (r *implRepository) List(ctx context.Context, sessionID string) ([]model.Exchange, error) {
	key := r.key(sessionID)
	items, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis history repository: failed to list %s: %w", key, err)
	}

	history := make([]model.Exchange, 0, len(items))
	for _, item := range items {
		var ex model.Exchange
		if err := json.Unmarshal([]byte(item), &ex); err != nil {
			r.l.Warnf(ctx, "redis history repository: skipping malformed entry in %s: %v", key, err)
			continue
		}
		history = append(history, ex)
	}
	return history, nil
}

func (r *implRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis history repository: failed to delete session: %w", err)
	}
	return nil
}
