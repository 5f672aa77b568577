package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/freshgrocer/storefront-service/internal/cart/domain"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	args := m.Called(ctx, ownerID)
	if res := args.Get(0); res != nil {
		return res.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCart(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockCartRepository) ListIdleOwners(ctx context.Context, idleFor time.Duration) ([]string, error) {
	args := m.Called(ctx, idleFor)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
