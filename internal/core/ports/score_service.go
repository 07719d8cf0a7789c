package ports

import (
	"context"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// ScoreService maintains the best score per (user, game).
type ScoreService interface {
	ListScores(ctx context.Context, userID int64) ([]domain.ScoreRecord, error)
	// SubmitScore applies the best-score-wins rule. A non-improving score is
	// a silent no-op, never an error.
	SubmitScore(ctx context.Context, userID int64, gameID string, score int64) error
}
