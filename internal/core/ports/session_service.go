package ports

import "github.com/batarcade/arcade-api/internal/core/domain"

// SessionService mints and validates bearer session tokens. Tokens are
// opaque to callers; Verify is a pure function over the signing secret.
type SessionService interface {
	Issue(identity domain.Identity) (string, error)
	// Verify returns the identity embedded in the token, or
	// domain.ErrInvalidToken when the token is missing, malformed, expired,
	// or carries a bad signature.
	Verify(token string) (domain.Identity, error)
}
