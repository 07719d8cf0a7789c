package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides idempotency checks for the activity trail backed by
// Redis. Key format: activity:<user_id>:<game_id>:<score>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact accepted submission has already
// been recorded.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID int64, gameID string, score int64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, gameID, score)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this submission has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID int64, gameID string, score int64) error {
	return d.client.Set(ctx, d.key(userID, gameID, score), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID int64, gameID string, score int64) string {
	return fmt.Sprintf("activity:%d:%s:%d", userID, gameID, score)
}
