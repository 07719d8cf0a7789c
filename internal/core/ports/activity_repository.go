package ports

import (
	"context"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// ActivityRepository persists score activity events to the audit collection.
type ActivityRepository interface {
	InsertActivity(ctx context.Context, activity *domain.ScoreActivity) error
}
