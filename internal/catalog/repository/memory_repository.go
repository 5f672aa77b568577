package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

// memoryProductRepository keeps the catalog in process memory. Used when no
// database is configured (local development, tests); preserves insertion
// order so the shop page is deterministic.
type memoryProductRepository struct {
	mu       sync.RWMutex
	order    []string
	products map[string]domain.Product
}

func NewMemoryProductRepository(seed []domain.Product) ProductRepository {
	r := &memoryProductRepository{
		products: make(map[string]domain.Product, len(seed)),
	}
	now := time.Now()
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
			p.UpdatedAt = now
		}
		r.order = append(r.order, p.ID)
		r.products[p.ID] = p
	}
	return r
}

func (r *memoryProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

func (r *memoryProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *memoryProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.order = append(r.order, product.ID)
	r.products[product.ID] = *product
	return nil
}
