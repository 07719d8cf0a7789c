package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

type stubUserRepo struct {
	nextID int64
	users  map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestCredentialService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewCredentialService(repo, bcrypt.MinCost)

	user, err := svc.Register(context.Background(), "bruce", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestCredentialService_Register_MissingFields(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), bcrypt.MinCost)

	if _, err := svc.Register(context.Background(), "", "pw"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bruce", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestCredentialService_Register_Duplicate(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), bcrypt.MinCost)

	_, _ = svc.Register(context.Background(), "bruce", "pw1")
	if _, err := svc.Register(context.Background(), "bruce", "other"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCredentialService_RegisterThenVerify_SameID(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), bcrypt.MinCost)

	registered, err := svc.Register(context.Background(), "bruce", "pw1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	verified, err := svc.VerifyLogin(context.Background(), "bruce", "pw1")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.ID != registered.ID {
		t.Fatalf("expected id %d, got %d", registered.ID, verified.ID)
	}
	if verified.Username != "bruce" {
		t.Fatalf("unexpected username: %s", verified.Username)
	}
}

// Wrong passwords and unknown usernames must be indistinguishable so callers
// cannot enumerate accounts.
func TestCredentialService_VerifyLogin_IndistinguishableFailures(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), bcrypt.MinCost)
	_, _ = svc.Register(context.Background(), "bruce", "pw1")

	_, wrongPass := svc.VerifyLogin(context.Background(), "bruce", "wrong")
	_, unknownUser := svc.VerifyLogin(context.Background(), "ghost", "pw1")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknownUser != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownUser)
	}
	if wrongPass != unknownUser {
		t.Fatalf("failures must be identical: %v vs %v", wrongPass, unknownUser)
	}
}

func TestCredentialService_VerifyLogin_NoSideEffects(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewCredentialService(repo, bcrypt.MinCost)
	registered, _ := svc.Register(context.Background(), "bruce", "pw1")

	before := cloneUser(repo.users["bruce"])
	time.Sleep(time.Millisecond)
	_, _ = svc.VerifyLogin(context.Background(), "bruce", "pw1")

	after := repo.users["bruce"]
	if after.ID != before.ID || after.PasswordHash != before.PasswordHash || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("verify must not mutate the stored user")
	}
	if registered.ID != after.ID {
		t.Fatalf("unexpected id change: %d vs %d", registered.ID, after.ID)
	}
}
