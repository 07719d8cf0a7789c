package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/batarcade/arcade-api/internal/api/metrics"
	"github.com/batarcade/arcade-api/internal/core/domain"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

// ScoreCache abstracts the per-user score list cache (Redis). All methods
// are fail-open: the service logs errors and falls through to the repository.
type ScoreCache interface {
	Get(ctx context.Context, userID int64) ([]domain.ScoreRecord, bool, error)
	Set(ctx context.Context, userID int64, records []domain.ScoreRecord) error
	Invalidate(ctx context.Context, userID int64) error
}

// ActivitySink accepts accepted-submission events for asynchronous recording.
type ActivitySink interface {
	Enqueue(in ports.ScoreActivityInput)
}

type ScoreService struct {
	repo     ports.ScoreRepository
	cache    ScoreCache
	activity ActivitySink
	log      zerolog.Logger
}

// NewScoreService returns a ScoreService. cache and activity may be nil,
// in which case caching and the activity trail are disabled.
func NewScoreService(repo ports.ScoreRepository, cache ScoreCache, activity ActivitySink, log zerolog.Logger) *ScoreService {
	return &ScoreService{repo: repo, cache: cache, activity: activity, log: log}
}

func (s *ScoreService) ListScores(ctx context.Context, userID int64) ([]domain.ScoreRecord, error) {
	if s.cache != nil {
		records, hit, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("score cache read failed, falling back to store")
		} else if hit {
			return records, nil
		}
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, records); err != nil {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("score cache write failed")
		}
	}
	return records, nil
}

// SubmitScore applies the best-score-wins rule. The read-compare-write is
// delegated to the repository, which must make it atomic per (user, game)
// pair. Non-improving submissions succeed silently.
func (s *ScoreService) SubmitScore(ctx context.Context, userID int64, gameID string, score int64) error {
	start := time.Now()
	now := start.UTC()

	outcome, err := s.repo.UpsertBest(ctx, userID, gameID, score, now)
	if err != nil {
		metrics.ScoreSubmissionDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}

	metrics.ScoreSubmissionsTotal.WithLabelValues(string(outcome)).Inc()
	metrics.ScoreSubmissionDuration.WithLabelValues(string(outcome)).Observe(time.Since(start).Seconds())

	if outcome == ports.OutcomeIgnored {
		s.log.Debug().Int64("user_id", userID).Str("game_id", gameID).Int64("score", score).Msg("non-improving score ignored")
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID); err != nil {
			s.log.Warn().Err(err).Int64("user_id", userID).Msg("score cache invalidation failed")
		}
	}

	if s.activity != nil {
		s.activity.Enqueue(ports.ScoreActivityInput{
			UserID:    userID,
			GameID:    gameID,
			Score:     score,
			First:     outcome == ports.OutcomeCreated,
			Timestamp: now,
		})
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("game_id", gameID).
		Int64("score", score).
		Str("outcome", string(outcome)).
		Msg("score accepted")

	return nil
}
