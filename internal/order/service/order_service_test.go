package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/freshgrocer/storefront-service/internal/catalog/domain"
	"github.com/freshgrocer/storefront-service/internal/order/domain"
	oRepo "github.com/freshgrocer/storefront-service/internal/order/repository"
	"github.com/freshgrocer/storefront-service/internal/order/repository/mocks"
	cartMocks "github.com/freshgrocer/storefront-service/internal/order/service/mocks"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	"github.com/freshgrocer/storefront-service/internal/pricing"
)

func intPtr(i int) *int { return &i }

func checkoutRequest() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		FirstName:     "Ana",
		LastName:      "Silva",
		Email:         "ana@example.com",
		Address:       "1 Market St",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "credit-card",
	}
}

func cartSnapshot() []pricing.Line {
	return []pricing.Line{
		{Product: catalogDomain.Product{ID: "p2", Name: "Fresh Strawberries", Price: decimal.RequireFromString("4.99"), Category: "Fruits"}, Quantity: 1},
		{Product: catalogDomain.Product{ID: "p4", Name: "Sourdough Bread", Price: decimal.RequireFromString("4.50"), Category: "Bakery"}, Quantity: 2},
		{Product: catalogDomain.Product{ID: "p6", Name: "Organic Baby Spinach", Price: decimal.RequireFromString("3.49"), Category: "Vegetables", Discount: intPtr(15)}, Quantity: 1},
	}
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.TODO()
	shipping := decimal.RequireFromString("5.00")

	t.Run("totals derived from the pricing engine", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCart := new(cartMocks.MockCartProvider)
		mockCart.On("Snapshot", ctx, "user1").Return(cartSnapshot(), nil).Once()
		mockOrderRepo.On("CreateOrderWithItems", ctx, mock.AnythingOfType("*domain.Order"), mock.AnythingOfType("[]domain.OrderItem")).Return(nil).Once()
		mockCart.On("ClearCart", ctx, "user1").Return(nil).Once()
		svc := NewOrderService(mockOrderRepo, mockCart, notifier.NewLogNotifier(), shipping)

		order, err := svc.Checkout(ctx, "user1", checkoutRequest())

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, "mock-order-id", order.ID)
		assert.Equal(t, domain.StatusPlaced, order.Status)
		// 4.99 + 2*4.50 + 3.49*0.85 = 16.9565 -> 16.96; +5.00 shipping.
		assert.Equal(t, "16.96", order.Subtotal.StringFixed(2))
		assert.Equal(t, "21.96", order.Total.StringFixed(2))
		assert.Len(t, order.Items, 3)
		// The spinach line price is derived, never hard-coded.
		assert.Equal(t, "2.97", order.Items[2].PriceAtPurchase.StringFixed(2))
		mockOrderRepo.AssertExpectations(t)
		mockCart.AssertExpectations(t)
	})

	t.Run("empty cart cannot be checked out", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCart := new(cartMocks.MockCartProvider)
		mockCart.On("Snapshot", ctx, "user1").Return([]pricing.Line{}, nil).Once()
		svc := NewOrderService(mockOrderRepo, mockCart, notifier.NewLogNotifier(), shipping)

		order, err := svc.Checkout(ctx, "user1", checkoutRequest())

		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Nil(t, order)
		mockOrderRepo.AssertNotCalled(t, "CreateOrderWithItems")
		mockCart.AssertNotCalled(t, "ClearCart")
	})

	t.Run("repository failure keeps the cart", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCart := new(cartMocks.MockCartProvider)
		mockCart.On("Snapshot", ctx, "user1").Return(cartSnapshot(), nil).Once()
		repoErr := errors.New("db transaction error")
		mockOrderRepo.On("CreateOrderWithItems", ctx, mock.AnythingOfType("*domain.Order"), mock.AnythingOfType("[]domain.OrderItem")).Return(repoErr).Once()
		svc := NewOrderService(mockOrderRepo, mockCart, notifier.NewLogNotifier(), shipping)

		order, err := svc.Checkout(ctx, "user1", checkoutRequest())

		assert.ErrorIs(t, err, ErrOrderCreationFailed)
		assert.Contains(t, err.Error(), repoErr.Error())
		assert.Nil(t, order)
		mockCart.AssertNotCalled(t, "ClearCart")
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("failed cart clear does not fail the order", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		mockCart := new(cartMocks.MockCartProvider)
		mockCart.On("Snapshot", ctx, "user1").Return(cartSnapshot(), nil).Once()
		mockOrderRepo.On("CreateOrderWithItems", ctx, mock.AnythingOfType("*domain.Order"), mock.AnythingOfType("[]domain.OrderItem")).Return(nil).Once()
		mockCart.On("ClearCart", ctx, "user1").Return(errors.New("store unavailable")).Once()
		svc := NewOrderService(mockOrderRepo, mockCart, notifier.NewLogNotifier(), shipping)

		order, err := svc.Checkout(ctx, "user1", checkoutRequest())

		assert.NoError(t, err)
		assert.NotNil(t, order)
		mockCart.AssertExpectations(t)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.TODO()
	shipping := decimal.RequireFromString("5.00")

	t.Run("owner can read their order", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		stored := &domain.Order{ID: "o1", OwnerID: "user1", Status: domain.StatusPlaced}
		mockOrderRepo.On("GetOrderByID", ctx, "o1").Return(stored, nil).Once()
		svc := NewOrderService(mockOrderRepo, new(cartMocks.MockCartProvider), notifier.NewLogNotifier(), shipping)

		order, err := svc.GetOrder(ctx, "user1", "o1")

		assert.NoError(t, err)
		assert.Equal(t, "o1", order.ID)
	})

	t.Run("someone else's order reads as not found", func(t *testing.T) {
		mockOrderRepo := new(mocks.MockOrderRepository)
		stored := &domain.Order{ID: "o1", OwnerID: "user1"}
		mockOrderRepo.On("GetOrderByID", ctx, "o1").Return(stored, nil).Once()
		svc := NewOrderService(mockOrderRepo, new(cartMocks.MockCartProvider), notifier.NewLogNotifier(), shipping)

		order, err := svc.GetOrder(ctx, "user2", "o1")

		assert.ErrorIs(t, err, oRepo.ErrOrderNotFound)
		assert.Nil(t, order)
	})
}
