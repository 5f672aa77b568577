package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cDomain "github.com/freshgrocer/storefront-service/internal/catalog/domain"
	cRepo "github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/catalog/repository/mocks"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	notifierMocks "github.com/freshgrocer/storefront-service/internal/platform/notifier/mocks"
	"github.com/freshgrocer/storefront-service/internal/pricing"
)

func intPtr(i int) *int { return &i }

func mockCatalog() []cDomain.Product {
	return []cDomain.Product{
		{ID: "p1", Name: "Organic Avocado", Price: decimal.RequireFromString("2.49"), Unit: "each", Category: "Fruits", Discount: intPtr(10)},
		{ID: "p2", Name: "Sourdough Bread", Price: decimal.RequireFromString("4.50"), Unit: "1 loaf (500g)", Category: "Bakery"},
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.TODO()

	t.Run("filter applied and effective prices derived", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(mockCatalog(), nil).Once()
		svc := NewCatalogService(mockRepo, notifier.NewLogNotifier())

		views, err := svc.ListProducts(ctx, pricing.Criteria{Categories: []string{"fruits"}})

		assert.NoError(t, err)
		assert.Len(t, views, 1)
		assert.Equal(t, "Organic Avocado", views[0].Name)
		assert.Equal(t, "2.24", views[0].EffectivePrice.StringFixed(2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("no criteria lists everything", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(mockCatalog(), nil).Once()
		svc := NewCatalogService(mockRepo, notifier.NewLogNotifier())

		views, err := svc.ListProducts(ctx, pricing.Criteria{})

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		// Undiscounted product sells at list price.
		assert.Equal(t, "4.50", views[1].EffectivePrice.StringFixed(2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed row is dropped, not fatal", func(t *testing.T) {
		bad := cDomain.Product{ID: "bad", Name: "Corrupt", Price: decimal.RequireFromString("3.00"), Category: "Dairy", Discount: intPtr(400)}
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(append(mockCatalog(), bad), nil).Once()
		svc := NewCatalogService(mockRepo, notifier.NewLogNotifier())

		views, err := svc.ListProducts(ctx, pricing.Criteria{})

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("ListProducts", ctx).Return(nil, errors.New("db error")).Once()
		svc := NewCatalogService(mockRepo, notifier.NewLogNotifier())

		views, err := svc.ListProducts(ctx, pricing.Criteria{})

		assert.Error(t, err)
		assert.Nil(t, views)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_GetProductDetails(t *testing.T) {
	ctx := context.TODO()

	t.Run("found", func(t *testing.T) {
		p := mockCatalog()[0]
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetProductByID", ctx, "p1").Return(&p, nil).Once()
		svc := NewCatalogService(mockRepo, notifier.NewLogNotifier())

		view, err := svc.GetProductDetails(ctx, "p1")

		assert.NoError(t, err)
		assert.NotNil(t, view)
		assert.Equal(t, "2.24", view.EffectivePrice.StringFixed(2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockRepo.On("GetProductByID", ctx, "missing").Return(nil, cRepo.ErrProductNotFound).Once()
		svc := NewCatalogService(mockRepo, notifier.NewLogNotifier())

		view, err := svc.GetProductDetails(ctx, "missing")

		assert.ErrorIs(t, err, cRepo.ErrProductNotFound)
		assert.Nil(t, view)
		mockRepo.AssertExpectations(t)
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.TODO()

	t.Run("invalid candidate returns violations without touching the repo", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockNotifier := new(notifierMocks.MockNotifier)
		svc := NewCatalogService(mockRepo, mockNotifier)

		req := cDomain.CreateProductRequest{Name: "ab", Price: decimal.NewFromInt(1), Unit: "each", Category: "Fruit"}
		product, result, err := svc.CreateProduct(ctx, req)

		assert.NoError(t, err)
		assert.Nil(t, product)
		assert.False(t, result.Valid())
		assert.Len(t, result.Violations, 1)
		assert.Equal(t, "name", result.Violations[0].Field)
		mockRepo.AssertNotCalled(t, "CreateProduct")
		mockNotifier.AssertNotCalled(t, "Notify")
	})

	t.Run("valid candidate is persisted and announced", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockNotifier := new(notifierMocks.MockNotifier)
		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*cDomain.Product).ID = "new-id"
			}).Return(nil).Once()
		mockNotifier.On("Notify", "Product Added!", mock.AnythingOfType("string"), notifier.SeverityInfo).Return().Once()
		svc := NewCatalogService(mockRepo, mockNotifier)

		req := cDomain.CreateProductRequest{
			Name:     "Organic Apples",
			Price:    decimal.RequireFromString("2.99"),
			Unit:     "per lb",
			Category: "Fruits",
			ImageURL: "https://example.com/apples.jpg",
			Discount: intPtr(10),
		}
		product, result, err := svc.CreateProduct(ctx, req)

		assert.NoError(t, err)
		assert.True(t, result.Valid())
		assert.NotNil(t, product)
		assert.Equal(t, "new-id", product.ID)
		assert.NotNil(t, product.ImageURL)
		mockRepo.AssertExpectations(t)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		mockRepo := new(mocks.MockProductRepository)
		mockNotifier := new(notifierMocks.MockNotifier)
		repoErr := errors.New("insert failed")
		mockRepo.On("CreateProduct", ctx, mock.AnythingOfType("*domain.Product")).Return(repoErr).Once()
		svc := NewCatalogService(mockRepo, mockNotifier)

		req := cDomain.CreateProductRequest{Name: "Organic Apples", Price: decimal.RequireFromString("2.99"), Unit: "per lb", Category: "Fruits"}
		product, _, err := svc.CreateProduct(ctx, req)

		assert.ErrorIs(t, err, repoErr)
		assert.Nil(t, product)
		mockNotifier.AssertNotCalled(t, "Notify")
		mockRepo.AssertExpectations(t)
	})
}
