package repository

import (
	"context"
	"errors"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the catalog source. The engine does not care whether
// products come from postgres or the seed data; tests substitute a mock for
// an immediate resolution.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
}
