package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // undiscounted unit price
	Unit      string          `json:"unit"`  // display-only, e.g. "per lb"
	Category  string          `json:"category"`
	ImageURL  *string         `json:"image_url,omitempty"` // nullable
	Discount  *int            `json:"discount,omitempty"`  // percent, 0-100, nil means none
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateProductRequest carries the add-product form fields. Field rules are
// enforced by ValidateProduct, not binding tags, so the handler can return
// the full per-field violation list in one response.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	ImageURL string          `json:"image_url"`
	Discount *int            `json:"discount"`
}
