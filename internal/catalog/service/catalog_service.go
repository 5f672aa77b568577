package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
	"github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	"github.com/freshgrocer/storefront-service/internal/pricing"
)

// ProductView is a catalog product plus the price the customer actually
// pays, rounded for display.
type ProductView struct {
	domain.Product
	EffectivePrice decimal.Decimal `json:"effective_price"`
}

type CatalogService interface {
	ListProducts(ctx context.Context, criteria pricing.Criteria) ([]ProductView, error)
	GetProductDetails(ctx context.Context, productID string) (*ProductView, error)
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, domain.ValidationResult, error)
}

type catalogServiceImpl struct {
	repo     repository.ProductRepository
	notifier notifier.Notifier
}

func NewCatalogService(repo repository.ProductRepository, n notifier.Notifier) CatalogService {
	return &catalogServiceImpl{repo: repo, notifier: n}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, criteria pricing.Criteria) ([]ProductView, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range pricing.Filter(products, criteria) {
		view, err := newProductView(p)
		if err != nil {
			// A row that bypassed validation; keep it out of the shop
			// rather than failing the whole page.
			logger.Error("ListProducts: dropping malformed product "+p.ID, err)
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *catalogServiceImpl) GetProductDetails(ctx context.Context, productID string) (*ProductView, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	view, err := newProductView(*product)
	if err != nil {
		logger.Error("GetProductDetails: malformed product "+productID, err)
		return nil, err
	}
	return &view, nil
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, domain.ValidationResult, error) {
	result := domain.ValidateProduct(req)
	if !result.Valid() {
		return nil, result, nil
	}

	product := &domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Unit:     req.Unit,
		Category: req.Category,
		Discount: req.Discount,
	}
	if req.ImageURL != "" {
		product.ImageURL = &req.ImageURL
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		logger.Error("CreateProduct: failed to save product", err)
		return nil, result, err
	}

	s.notifier.Notify("Product Added!",
		fmt.Sprintf("%s has been successfully added to the store.", product.Name),
		notifier.SeverityInfo)
	return product, result, nil
}

func newProductView(p domain.Product) (ProductView, error) {
	effective, err := pricing.EffectivePrice(p)
	if err != nil {
		return ProductView{}, err
	}
	return ProductView{Product: p, EffectivePrice: pricing.RoundDisplay(effective)}, nil
}
