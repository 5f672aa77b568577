package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshgrocer/storefront-service/internal/user/domain"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User // keyed by ID
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User)}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrUserConflict
		}
		if user.PhoneNumber != nil && u.PhoneNumber != nil && *u.PhoneNumber == *user.PhoneNumber {
			return ErrUserConflict
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == identifier {
			return &u, nil
		}
		if u.PhoneNumber != nil && *u.PhoneNumber == identifier {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
