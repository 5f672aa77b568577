package repository

import (
	"context"
	"errors"
	"sync"

	catalogDomain "github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

var ErrItemNotFound = errors.New("product is not in the wishlist")

// WishlistRepository keeps per-shopper wishlists in memory, insertion order
// preserved.
type WishlistRepository interface {
	ListItems(ctx context.Context, ownerID string) ([]catalogDomain.Product, error)
	AddItem(ctx context.Context, ownerID string, product catalogDomain.Product) error
	RemoveItem(ctx context.Context, ownerID, productID string) error
}

type memoryWishlistRepository struct {
	mu    sync.RWMutex
	lists map[string][]catalogDomain.Product
}

func NewMemoryWishlistRepository() WishlistRepository {
	return &memoryWishlistRepository{lists: make(map[string][]catalogDomain.Product)}
}

func (r *memoryWishlistRepository) ListItems(ctx context.Context, ownerID string) ([]catalogDomain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]catalogDomain.Product(nil), r.lists[ownerID]...), nil
}

func (r *memoryWishlistRepository) AddItem(ctx context.Context, ownerID string, product catalogDomain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.lists[ownerID] {
		if p.ID == product.ID {
			return nil // already saved, adding again is a no-op
		}
	}
	r.lists[ownerID] = append(r.lists[ownerID], product)
	return nil
}

func (r *memoryWishlistRepository) RemoveItem(ctx context.Context, ownerID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.lists[ownerID]
	for i, p := range list {
		if p.ID == productID {
			r.lists[ownerID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}
