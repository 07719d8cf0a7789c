package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/batarcade/arcade-api/internal/api/metrics"
	"github.com/batarcade/arcade-api/internal/core/domain"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) used to avoid
// recording the same accepted submission twice.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID int64, gameID string, score int64) (bool, error)
	Mark(ctx context.Context, userID int64, gameID string, score int64) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single accepted submission. Failures
// here never affect the synchronous submit path; the dispatcher only logs.
func (s *activityService) Process(ctx context.Context, in ports.ScoreActivityInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.UserID, in.GameID, in.Score)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", in.UserID).Str("game_id", in.GameID).Msg("dedup check failed, recording anyway")
	} else if isDup {
		metrics.ActivityDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Int64("user_id", in.UserID).Str("game_id", in.GameID).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivityDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, in.UserID, in.GameID, in.Score); markErr != nil {
		s.log.Warn().Err(markErr).Int64("user_id", in.UserID).Str("game_id", in.GameID).Msg("failed to set dedup key")
	}

	activity := &domain.ScoreActivity{
		UserID:    in.UserID,
		GameID:    in.GameID,
		Score:     in.Score,
		First:     in.First,
		Timestamp: in.Timestamp,
	}
	if err := s.repo.InsertActivity(ctx, activity); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Info().
		Int64("user_id", in.UserID).
		Str("game_id", in.GameID).
		Int64("score", in.Score).
		Bool("first", in.First).
		Msg("score activity recorded")

	return nil
}
