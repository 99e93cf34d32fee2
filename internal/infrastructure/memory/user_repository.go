package memory

import (
	"context"
	"sync"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []domain.Credentials
}

func NewUserRepository(seed []domain.Credentials) *UserRepository {
	return &UserRepository{users: append([]domain.Credentials(nil), seed...)}
}

func (r *UserRepository) Authenticate(ctx context.Context, username, password string) error {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return nil
		}
	}
	return domain.ErrInvalidCredentials
}
