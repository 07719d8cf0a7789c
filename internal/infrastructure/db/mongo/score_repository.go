package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/batarcade/arcade-api/internal/core/domain"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

type MongoScoreRepository struct {
	coll *mongo.Collection
}

func NewScoreRepository(db *mongo.Database) *MongoScoreRepository {
	return &MongoScoreRepository{coll: db.Collection(scoresCollection)}
}

type mongoScore struct {
	UserID    int64  `bson:"user_id"`
	GameID    string `bson:"game_id"`
	Score     int64  `bson:"score"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (r *MongoScoreRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ScoreRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer cur.Close(ctx)

	records := []domain.ScoreRecord{}
	for cur.Next(ctx) {
		var ms mongoScore
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode score: %w", err)
		}
		records = append(records, domain.ScoreRecord{
			UserID:    ms.UserID,
			GameID:    ms.GameID,
			Score:     ms.Score,
			UpdatedAt: unixToTime(ms.UpdatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	return records, nil
}

// UpsertBest implements the best-score-wins rule with a conditional update
// plus an index-guarded insert. Both steps are single atomic operations on
// the server, so two racing submissions for the same pair cannot both win on
// a stale read:
//
//  1. Update the record only if its stored score is strictly lower.
//  2. If nothing matched, try to create the record; a duplicate-key error
//     means a record appeared (or already existed) with a score >= ours, so
//     re-run the conditional update once and otherwise treat it as a no-op.
func (r *MongoScoreRepository) UpsertBest(ctx context.Context, userID int64, gameID string, score int64, at time.Time) (ports.UpsertOutcome, error) {
	improved, err := r.updateIfLower(ctx, userID, gameID, score, at)
	if err != nil {
		return "", err
	}
	if improved {
		return ports.OutcomeImproved, nil
	}

	doc := mongoScore{UserID: userID, GameID: gameID, Score: score, UpdatedAt: at.Unix()}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("insert score: %w", err)
		}
		// Lost the insert race or the record pre-existed with >= score.
		improved, err := r.updateIfLower(ctx, userID, gameID, score, at)
		if err != nil {
			return "", err
		}
		if improved {
			return ports.OutcomeImproved, nil
		}
		return ports.OutcomeIgnored, nil
	}
	return ports.OutcomeCreated, nil
}

func (r *MongoScoreRepository) updateIfLower(ctx context.Context, userID int64, gameID string, score int64, at time.Time) (bool, error) {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"user_id": userID, "game_id": gameID, "score": bson.M{"$lt": score}},
		bson.M{"$set": bson.M{"score": score, "updated_at": at.Unix()}},
	)
	if err != nil {
		return false, fmt.Errorf("update score: %w", err)
	}
	return res.MatchedCount > 0, nil
}
