package domain

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("missing fields")
var ErrUserExists = errors.New("username already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid token")
var ErrUnauthorized = errors.New("unauthorized")

// User models a registered arcade account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the subset of User carried inside a session token. It is
// trusted downstream without a credential-store lookup.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
