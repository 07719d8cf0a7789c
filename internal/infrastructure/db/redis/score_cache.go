package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ScoreCache caches each user's full score list as a JSON blob.
// Key format: scores:<user_id>
type ScoreCache struct {
	client *redis.Client
}

// NewScoreCache creates a ScoreCache wrapping the given Redis client.
func NewScoreCache(client *redis.Client) *ScoreCache {
	return &ScoreCache{client: client}
}

// Get returns the cached score list for the user. The second return value
// reports whether the key was present.
func (c *ScoreCache) Get(ctx context.Context, userID int64) ([]domain.ScoreRecord, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("score cache get: %w", err)
	}

	var records []domain.ScoreRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("score cache decode: %w", err)
	}
	return records, true, nil
}

// Set stores the user's score list (expires after cacheTTL).
func (c *ScoreCache) Set(ctx context.Context, userID int64, records []domain.ScoreRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("score cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, cacheTTL).Err()
}

// Invalidate drops the user's cached list after an accepted submission.
func (c *ScoreCache) Invalidate(ctx context.Context, userID int64) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *ScoreCache) key(userID int64) string {
	return fmt.Sprintf("scores:%d", userID)
}
