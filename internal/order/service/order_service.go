package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/order/domain"
	"github.com/freshgrocer/storefront-service/internal/order/repository"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	"github.com/freshgrocer/storefront-service/internal/pricing"
)

var (
	ErrEmptyCart           = errors.New("cannot checkout an empty cart")
	ErrOrderCreationFailed = errors.New("order creation failed")
)

// CartProvider is what checkout needs from the cart: a snapshot to price
// and a way to clear it once the order is placed. The cart service
// satisfies this.
type CartProvider interface {
	Snapshot(ctx context.Context, ownerID string) ([]pricing.Line, error)
	ClearCart(ctx context.Context, ownerID string) error
}

type OrderService interface {
	Checkout(ctx context.Context, ownerID string, req domain.CheckoutRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, ownerID, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
}

type orderServiceImpl struct {
	orderRepo   repository.OrderRepository
	cart        CartProvider
	notifier    notifier.Notifier
	shippingFee decimal.Decimal
}

func NewOrderService(or repository.OrderRepository, cart CartProvider, n notifier.Notifier, shippingFee decimal.Decimal) OrderService {
	return &orderServiceImpl{
		orderRepo:   or,
		cart:        cart,
		notifier:    n,
		shippingFee: shippingFee,
	}
}

// Checkout snapshots the cart, derives every amount from the pricing
// engine and persists the order. Line prices are never taken from the
// client; the stored price_at_purchase is the effective price at the
// moment of checkout.
func (s *orderServiceImpl) Checkout(ctx context.Context, ownerID string, req domain.CheckoutRequest) (*domain.Order, error) {
	lines, err := s.cart.Snapshot(ctx, ownerID)
	if err != nil {
		logger.Error("Checkout: failed to snapshot cart for "+ownerID, err)
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(lines))
	for i, line := range lines {
		unit, err := pricing.EffectivePrice(line.Product)
		if err != nil {
			logger.Error("Checkout: malformed product in cart "+ownerID, err)
			return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
		}
		items[i] = domain.OrderItem{
			ProductID:       line.Product.ID,
			ProductName:     line.Product.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: pricing.RoundDisplay(unit),
		}
	}

	subtotal, err := pricing.Subtotal(lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}
	total, err := pricing.Total(lines, s.shippingFee)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	newOrder := &domain.Order{
		OwnerID:       ownerID,
		Status:        domain.StatusPlaced,
		Subtotal:      pricing.RoundDisplay(subtotal),
		ShippingFee:   s.shippingFee,
		Total:         pricing.RoundDisplay(total),
		PaymentMethod: req.PaymentMethod,
		Shipping: domain.ShippingDetails{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			State:     req.State,
			ZipCode:   req.ZipCode,
		},
	}

	if err := s.orderRepo.CreateOrderWithItems(ctx, newOrder, items); err != nil {
		logger.Error("Checkout: failed to save order", err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	// The cart is spent. A failed clear leaves a stale cart behind, which
	// the idle sweeper will eventually collect, so log and move on.
	if err := s.cart.ClearCart(ctx, ownerID); err != nil {
		logger.Error("Checkout: failed to clear cart for "+ownerID, err)
	}

	s.notifier.Notify("Order placed successfully!",
		"Your order has been confirmed. Thank you for shopping with us!",
		notifier.SeverityInfo)
	return newOrder, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, ownerID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.OwnerID != ownerID {
		// Don't leak other shoppers' orders.
		return nil, repository.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	return s.orderRepo.ListOrdersByOwner(ctx, ownerID)
}
