package repository

import (
	"context"
	"errors"

	"github.com/freshgrocer/storefront-service/internal/user/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("user with this email or phone number already exists")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}
