package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// SessionService mints and validates HS256-signed session tokens. It holds
// no state beyond the signing secret; verification never touches storage.
type SessionService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewSessionService(secret string, tokenTTL time.Duration) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &SessionService{secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *SessionService) Issue(identity domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"id":       identity.ID,
		"username": identity.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *SessionService) Verify(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	// MapClaims decodes JSON numbers as float64.
	id, ok := claims["id"].(float64)
	if !ok {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{ID: int64(id), Username: username}, nil
}
