package ports

import (
	"context"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
