// Package pricing is the storefront's pricing and catalog engine: discount
// resolution, cart totals and multi-criteria product filtering. Everything
// here is a pure function over snapshots owned by the caller; the same
// arithmetic backs the shop, cart, wishlist and checkout endpoints so their
// displayed prices can never drift apart.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

// ErrInvalidProduct marks arithmetic called on a product that bypassed
// validation. Treated as a programmer error, not user input.
var ErrInvalidProduct = errors.New("invalid product")

var oneHundred = decimal.NewFromInt(100)

// EffectivePrice returns the unit price after the product's percentage
// discount. The result keeps full precision; round with RoundDisplay only
// when presenting.
func EffectivePrice(p domain.Product) (decimal.Decimal, error) {
	if !p.Price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price must be positive, got %s", ErrInvalidProduct, p.Price)
	}
	if p.Discount == nil || *p.Discount == 0 {
		return p.Price, nil
	}
	d := *p.Discount
	if d < 0 || d > 100 {
		return decimal.Zero, fmt.Errorf("%w: discount %d is outside [0,100]", ErrInvalidProduct, d)
	}
	discount := p.Price.Mul(decimal.NewFromInt(int64(d))).Div(oneHundred)
	return p.Price.Sub(discount), nil
}

// RoundDisplay rounds a money amount to 2 decimal places, half-up. Applied
// at the presentation boundary only.
func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Line is one cart line as seen by the totals calculator.
type Line struct {
	Product  domain.Product
	Quantity int
}

// Subtotal sums effective price times quantity over all lines.
func Subtotal(lines []Line) (decimal.Decimal, error) {
	subtotal := decimal.Zero
	for _, line := range lines {
		unit, err := EffectivePrice(line.Product)
		if err != nil {
			return decimal.Zero, err
		}
		subtotal = subtotal.Add(unit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal, nil
}

// Total adds the flat shipping fee to the subtotal. An empty cart charges
// nothing, shipping included.
func Total(lines []Line, shippingFee decimal.Decimal) (decimal.Decimal, error) {
	if len(lines) == 0 {
		return decimal.Zero, nil
	}
	subtotal, err := Subtotal(lines)
	if err != nil {
		return decimal.Zero, err
	}
	return subtotal.Add(shippingFee), nil
}
