package repository

import (
	"context"
	"errors"

	"github.com/freshgrocer/storefront-service/internal/order/domain"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	CreateOrderWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error)
}
