package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/freshgrocer/storefront-service/internal/pricing"
)

type MockCartProvider struct {
	mock.Mock
}

func (m *MockCartProvider) Snapshot(ctx context.Context, ownerID string) ([]pricing.Line, error) {
	args := m.Called(ctx, ownerID)
	if res := args.Get(0); res != nil {
		return res.([]pricing.Line), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartProvider) ClearCart(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}
