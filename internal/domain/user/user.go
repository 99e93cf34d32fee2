package user

import (
	"context"
	"errors"
)

var ErrInvalidCredentials = errors.New("user: invalid credentials")

// Credentials is a seeded login record. Passwords are stored and compared in
// plaintext; hardening authentication is out of scope.
type Credentials struct {
	UserID   int
	Username string
	Password string
}

type Repository interface {
	// Authenticate returns ErrInvalidCredentials unless some seeded user
	// matches both username and password.
	Authenticate(ctx context.Context, username, password string) error
}
