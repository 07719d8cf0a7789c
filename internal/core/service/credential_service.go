package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/batarcade/arcade-api/internal/core/domain"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

// CredentialService implements account registration and login verification.
type CredentialService struct {
	repo       ports.UserRepository
	bcryptCost int
}

func NewCredentialService(repo ports.UserRepository, bcryptCost int) *CredentialService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &CredentialService{repo: repo, bcryptCost: bcryptCost}
}

func (s *CredentialService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// VerifyLogin checks a username/password pair. Unknown usernames and wrong
// passwords both fail with the same ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *CredentialService) VerifyLogin(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
