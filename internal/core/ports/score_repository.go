package ports

import (
	"context"
	"time"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// UpsertOutcome describes what a best-score upsert did.
type UpsertOutcome string

const (
	// OutcomeCreated means this was the first submission for the pair.
	OutcomeCreated UpsertOutcome = "created"
	// OutcomeImproved means the submission beat the stored score.
	OutcomeImproved UpsertOutcome = "improved"
	// OutcomeIgnored means the stored score was already >= the submission.
	OutcomeIgnored UpsertOutcome = "ignored"
)

// ScoreRepository defines persistence for per-(user, game) best scores.
type ScoreRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.ScoreRecord, error)
	// UpsertBest applies the best-score-wins rule atomically: create on first
	// submission, overwrite only when score strictly exceeds the stored
	// value. Concurrent submissions for the same pair must not both win on a
	// stale read.
	UpsertBest(ctx context.Context, userID int64, gameID string, score int64, at time.Time) (UpsertOutcome, error)
}
