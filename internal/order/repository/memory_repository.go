package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshgrocer/storefront-service/internal/order/domain"
)

// memoryOrderRepository backs checkout when no database is configured.
type memoryOrderRepository struct {
	mu     sync.RWMutex
	order  []string
	orders map[string]domain.Order
}

func NewMemoryOrderRepository() OrderRepository {
	return &memoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *memoryOrderRepository) CreateOrderWithItems(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	if order.Status == "" {
		order.Status = domain.StatusPlaced
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].OrderID = order.ID
		items[i].CreatedAt = order.CreatedAt
	}
	order.Items = items

	r.order = append(r.order, order.ID)
	r.orders[order.ID] = *order
	return nil
}

func (r *memoryOrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return &o, nil
}

func (r *memoryOrderRepository) ListOrdersByOwner(ctx context.Context, ownerID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []domain.Order
	// newest first, matching the postgres ORDER BY created_at DESC
	for i := len(r.order) - 1; i >= 0; i-- {
		o := r.orders[r.order[i]]
		if o.OwnerID == ownerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
