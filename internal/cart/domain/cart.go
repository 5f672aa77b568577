package domain

import (
	"time"

	"github.com/shopspring/decimal"

	catalogDomain "github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

// Line couples a catalog product with a quantity. Quantity never drops
// below 1; decrementing past it is a clamped no-op.
type Line struct {
	Product  catalogDomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// Cart is one shopper's cart, keyed by user ID or guest session ID.
type Cart struct {
	OwnerID   string    `json:"owner_id"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"` // defaults to 1
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"` // +1 / -1 from the stepper
}

// LineView is a cart line priced for display.
type LineView struct {
	Product   catalogDomain.Product `json:"product"`
	Quantity  int                   `json:"quantity"`
	UnitPrice decimal.Decimal       `json:"unit_price"` // effective, rounded
	LineTotal decimal.Decimal       `json:"line_total"`
}

// Summary is the derived order summary box: never stored, always computed
// from the current lines.
type Summary struct {
	Lines       []LineView      `json:"lines"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Total       decimal.Decimal `json:"total"`
}
