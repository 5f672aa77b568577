package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	oDomain "github.com/freshgrocer/storefront-service/internal/order/domain"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrderWithItems(ctx context.Context, order *oDomain.Order, items []oDomain.OrderItem) error {
	args := m.Called(ctx, order, items)
	if args.Error(0) == nil {
		order.ID = "mock-order-id"
		order.Items = items
		if order.Status == "" {
			order.Status = oDomain.StatusPlaced
		}
	}
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, id string) (*oDomain.Order, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]oDomain.Order, error) {
	args := m.Called(ctx, ownerID)
	if res := args.Get(0); res != nil {
		return res.([]oDomain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}
