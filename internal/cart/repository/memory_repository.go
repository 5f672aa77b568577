package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/freshgrocer/storefront-service/internal/cart/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository owns the authoritative cart state. The storefront keeps
// carts in memory only; nothing here survives a restart, matching the
// session-scoped cart of the web app.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, ownerID string) error
	ListIdleOwners(ctx context.Context, idleFor time.Duration) ([]string, error)
}

type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepository{carts: make(map[string]domain.Cart)}
}

func (r *memoryCartRepository) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[ownerID]
	if !ok {
		return nil, ErrCartNotFound
	}
	// Copy lines so callers can't mutate the stored cart in place.
	cart.Lines = append([]domain.Line(nil), cart.Lines...)
	return &cart, nil
}

func (r *memoryCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *cart
	saved.Lines = append([]domain.Line(nil), cart.Lines...)
	saved.UpdatedAt = time.Now()
	r.carts[cart.OwnerID] = saved
	cart.UpdatedAt = saved.UpdatedAt
	return nil
}

func (r *memoryCartRepository) DeleteCart(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, ownerID)
	return nil
}

func (r *memoryCartRepository) ListIdleOwners(ctx context.Context, idleFor time.Duration) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	threshold := time.Now().Add(-idleFor)
	var owners []string
	for ownerID, cart := range r.carts {
		if cart.UpdatedAt.Before(threshold) {
			owners = append(owners, ownerID)
		}
	}
	return owners, nil
}
