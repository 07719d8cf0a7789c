package ports

import (
	"context"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// CredentialService owns account creation and password verification.
type CredentialService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	VerifyLogin(ctx context.Context, username, password string) (*domain.User, error)
}
