package service

import (
	"context"
	"fmt"

	"github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	"github.com/freshgrocer/storefront-service/internal/pricing"
	"github.com/freshgrocer/storefront-service/internal/wishlist/domain"
	wishlistRepo "github.com/freshgrocer/storefront-service/internal/wishlist/repository"
)

type WishlistService interface {
	ListItems(ctx context.Context, ownerID string) ([]domain.Item, error)
	AddItem(ctx context.Context, ownerID, productID string) error
	RemoveItem(ctx context.Context, ownerID, productID string) error
}

type wishlistServiceImpl struct {
	repo        wishlistRepo.WishlistRepository
	productRepo repository.ProductRepository
	notifier    notifier.Notifier
}

func NewWishlistService(wr wishlistRepo.WishlistRepository, pr repository.ProductRepository, n notifier.Notifier) WishlistService {
	return &wishlistServiceImpl{repo: wr, productRepo: pr, notifier: n}
}

func (s *wishlistServiceImpl) ListItems(ctx context.Context, ownerID string) ([]domain.Item, error) {
	products, err := s.repo.ListItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(products))
	for _, p := range products {
		effective, err := pricing.EffectivePrice(p)
		if err != nil {
			logger.Error("ListItems: dropping malformed wishlist product "+p.ID, err)
			continue
		}
		items = append(items, domain.Item{Product: p, EffectivePrice: pricing.RoundDisplay(effective)})
	}
	return items, nil
}

func (s *wishlistServiceImpl) AddItem(ctx context.Context, ownerID, productID string) error {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := s.repo.AddItem(ctx, ownerID, *product); err != nil {
		return err
	}
	s.notifier.Notify("Added to wishlist",
		fmt.Sprintf("%s has been added to your wishlist", product.Name),
		notifier.SeverityInfo)
	return nil
}

func (s *wishlistServiceImpl) RemoveItem(ctx context.Context, ownerID, productID string) error {
	if err := s.repo.RemoveItem(ctx, ownerID, productID); err != nil {
		return err
	}
	s.notifier.Notify("Removed from wishlist",
		"The item has been removed from your wishlist",
		notifier.SeverityInfo)
	return nil
}
