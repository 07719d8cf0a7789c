package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

type MongoActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *MongoActivityRepository {
	return &MongoActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	UserID    int64  `bson:"user_id"`
	GameID    string `bson:"game_id"`
	Score     int64  `bson:"score"`
	First     bool   `bson:"first"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoActivityRepository) InsertActivity(ctx context.Context, activity *domain.ScoreActivity) error {
	doc := mongoActivity{
		UserID:    activity.UserID,
		GameID:    activity.GameID,
		Score:     activity.Score,
		First:     activity.First,
		Timestamp: activity.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
