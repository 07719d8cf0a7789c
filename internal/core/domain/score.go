package domain

import "time"

// ScoreRecord holds a user's best score for a single game. There is at most
// one record per (user, game) pair and its score never decreases.
type ScoreRecord struct {
	UserID    int64     `json:"user_id" bson:"user_id"`
	GameID    string    `json:"game_id" bson:"game_id"`
	Score     int64     `json:"score" bson:"score"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ScoreActivity records a single accepted (winning) submission for the
// activity trail. First reports whether it created the record.
type ScoreActivity struct {
	UserID    int64     `json:"user_id" bson:"user_id"`
	GameID    string    `json:"game_id" bson:"game_id"`
	Score     int64     `json:"score" bson:"score"`
	First     bool      `json:"first" bson:"first"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
