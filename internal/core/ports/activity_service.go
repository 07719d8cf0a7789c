package ports

import (
	"context"
	"time"
)

// ScoreActivityInput is the DTO passed from the score service to the
// activity trail via the dispatcher.
type ScoreActivityInput struct {
	UserID    int64
	GameID    string
	Score     int64
	First     bool
	Timestamp time.Time
}

// ActivityService records accepted score submissions asynchronously.
type ActivityService interface {
	Process(ctx context.Context, in ScoreActivityInput) error
}
