package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

func TestSessionService_IssueVerify_Roundtrip(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	token, err := svc.Issue(domain.Identity{ID: 1, Username: "bruce"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	identity, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.ID != 1 || identity.Username != "bruce" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestSessionService_Verify_Empty(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	if _, err := svc.Verify(""); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionService_Verify_Malformed(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	if _, err := svc.Verify("not-a-jwt"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSessionService_Verify_WrongSecret(t *testing.T) {
	issuer := NewSessionService("secret-a", time.Hour)
	verifier := NewSessionService("secret-b", time.Hour)

	token, err := issuer.Issue(domain.Identity{ID: 7, Username: "alfred"})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

// Swapping the payload between two validly signed tokens must invalidate the
// signature.
func TestSessionService_Verify_TamperedPayload(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	tokenA, _ := svc.Issue(domain.Identity{ID: 1, Username: "bruce"})
	tokenB, _ := svc.Issue(domain.Identity{ID: 2, Username: "joker"})

	partsA := strings.Split(tokenA, ".")
	partsB := strings.Split(tokenB, ".")
	forged := partsA[0] + "." + partsB[1] + "." + partsA[2]

	if _, err := svc.Verify(forged); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for forged token, got %v", err)
	}
}

func TestSessionService_Verify_Expired(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	claims := jwt.MapClaims{
		"id":       int64(1),
		"username": "bruce",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Verify(expired); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestSessionService_Verify_RejectsUnexpectedAlg(t *testing.T) {
	svc := NewSessionService("secret", time.Hour)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":       int64(1),
		"username": "bruce",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing failed: %v", err)
	}

	if _, err := svc.Verify(unsigned); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}
