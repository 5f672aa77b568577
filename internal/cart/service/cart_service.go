package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/cart/domain"
	"github.com/freshgrocer/storefront-service/internal/cart/repository"
	catalogRepo "github.com/freshgrocer/storefront-service/internal/catalog/repository"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	"github.com/freshgrocer/storefront-service/internal/pricing"
)

var ErrLineNotFound = errors.New("product is not in the cart")

type CartService interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Summary, error)
	AddItem(ctx context.Context, ownerID string, req domain.AddItemRequest) (*domain.Summary, error)
	ChangeQuantity(ctx context.Context, ownerID, productID string, delta int) (*domain.Summary, error)
	RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Summary, error)
	Snapshot(ctx context.Context, ownerID string) ([]pricing.Line, error)
	ClearCart(ctx context.Context, ownerID string) error
	SweepIdleCarts(ctx context.Context) // scheduler entry point
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo catalogRepo.ProductRepository
	notifier    notifier.Notifier
	shippingFee decimal.Decimal
	idleTTL     time.Duration
	scheduler   *cron.Cron
}

func NewCartService(cr repository.CartRepository, pr catalogRepo.ProductRepository, n notifier.Notifier, shippingFee decimal.Decimal, idleTTL time.Duration) CartService {
	s := &cartServiceImpl{
		cartRepo:    cr,
		productRepo: pr,
		notifier:    n,
		shippingFee: shippingFee,
		idleTTL:     idleTTL,
		scheduler:   cron.New(cron.WithSeconds()),
	}
	s.initScheduler()
	return s
}

func (s *cartServiceImpl) initScheduler() {
	spec := "0 */5 * * * *" // every 5 minutes
	s.scheduler.AddFunc(spec, func() {
		s.SweepIdleCarts(context.Background())
	})
	s.scheduler.Start()
	logger.Info(fmt.Sprintf("Idle cart sweeper initialized with spec '%s' and TTL %v", spec, s.idleTTL))
}

// SweepIdleCarts drops carts untouched for longer than the configured TTL
// so abandoned guest sessions don't accumulate.
func (s *cartServiceImpl) SweepIdleCarts(ctx context.Context) {
	owners, err := s.cartRepo.ListIdleOwners(ctx, s.idleTTL)
	if err != nil {
		logger.Error("SweepIdleCarts: failed to list idle carts", err)
		return
	}
	for _, ownerID := range owners {
		if err := s.cartRepo.DeleteCart(ctx, ownerID); err != nil {
			logger.Error("SweepIdleCarts: failed to delete cart for "+ownerID, err)
			continue
		}
	}
	if len(owners) > 0 {
		logger.Info(fmt.Sprintf("SweepIdleCarts: removed %d idle carts", len(owners)))
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, ownerID string) (*domain.Summary, error) {
	cart, err := s.loadOrEmpty(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(cart)
}

func (s *cartServiceImpl) AddItem(ctx context.Context, ownerID string, req domain.AddItemRequest) (*domain.Summary, error) {
	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadOrEmpty(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	found := false
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID == product.ID {
			cart.Lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Lines = append(cart.Lines, domain.Line{Product: *product, Quantity: quantity})
	}

	if err := s.cartRepo.SaveCart(ctx, cart); err != nil {
		logger.Error("AddItem: failed to save cart", err)
		return nil, err
	}

	s.notifier.Notify("Added to cart",
		fmt.Sprintf("%s has been added to your cart", product.Name),
		notifier.SeverityInfo)
	return s.buildSummary(cart)
}

func (s *cartServiceImpl) ChangeQuantity(ctx context.Context, ownerID, productID string, delta int) (*domain.Summary, error) {
	cart, err := s.cartRepo.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Lines {
		if cart.Lines[i].Product.ID == productID {
			newQuantity := cart.Lines[i].Quantity + delta
			if newQuantity < 1 {
				newQuantity = 1 // clamped, never an error
			}
			cart.Lines[i].Quantity = newQuantity
			found = true
			break
		}
	}
	if !found {
		return nil, ErrLineNotFound
	}

	if err := s.cartRepo.SaveCart(ctx, cart); err != nil {
		logger.Error("ChangeQuantity: failed to save cart", err)
		return nil, err
	}
	return s.buildSummary(cart)
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, ownerID, productID string) (*domain.Summary, error) {
	cart, err := s.cartRepo.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	removedName := ""
	lines := cart.Lines[:0]
	for _, line := range cart.Lines {
		if line.Product.ID == productID {
			removedName = line.Product.Name
			continue
		}
		lines = append(lines, line)
	}
	if removedName == "" {
		return nil, ErrLineNotFound
	}
	cart.Lines = lines

	if err := s.cartRepo.SaveCart(ctx, cart); err != nil {
		logger.Error("RemoveItem: failed to save cart", err)
		return nil, err
	}

	s.notifier.Notify("Removed from cart",
		fmt.Sprintf("%s has been removed from your cart", removedName),
		notifier.SeverityInfo)
	return s.buildSummary(cart)
}

// Snapshot hands checkout a copy of the current lines in the shape the
// pricing engine consumes.
func (s *cartServiceImpl) Snapshot(ctx context.Context, ownerID string) ([]pricing.Line, error) {
	cart, err := s.loadOrEmpty(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	lines := make([]pricing.Line, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, pricing.Line{Product: line.Product, Quantity: line.Quantity})
	}
	return lines, nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, ownerID string) error {
	return s.cartRepo.DeleteCart(ctx, ownerID)
}

func (s *cartServiceImpl) loadOrEmpty(ctx context.Context, ownerID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.GetCart(ctx, ownerID)
	if errors.Is(err, repository.ErrCartNotFound) {
		return &domain.Cart{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartServiceImpl) buildSummary(cart *domain.Cart) (*domain.Summary, error) {
	lines := make([]pricing.Line, 0, len(cart.Lines))
	views := make([]domain.LineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		unit, err := pricing.EffectivePrice(line.Product)
		if err != nil {
			logger.Error("buildSummary: malformed product in cart "+cart.OwnerID, err)
			return nil, err
		}
		lines = append(lines, pricing.Line{Product: line.Product, Quantity: line.Quantity})
		views = append(views, domain.LineView{
			Product:   line.Product,
			Quantity:  line.Quantity,
			UnitPrice: pricing.RoundDisplay(unit),
			LineTotal: pricing.RoundDisplay(unit.Mul(decimal.NewFromInt(int64(line.Quantity)))),
		})
	}

	subtotal, err := pricing.Subtotal(lines)
	if err != nil {
		return nil, err
	}
	total, err := pricing.Total(lines, s.shippingFee)
	if err != nil {
		return nil, err
	}

	shipping := decimal.Zero
	if len(lines) > 0 {
		shipping = s.shippingFee
	}
	return &domain.Summary{
		Lines:       views,
		Subtotal:    pricing.RoundDisplay(subtotal),
		ShippingFee: shipping,
		Total:       pricing.RoundDisplay(total),
	}, nil
}
