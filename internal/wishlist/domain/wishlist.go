package domain

import (
	"github.com/shopspring/decimal"

	catalogDomain "github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Item is a saved product priced for display, list price alongside the
// effective one so the UI can strike it through.
type Item struct {
	Product        catalogDomain.Product `json:"product"`
	EffectivePrice decimal.Decimal       `json:"effective_price"`
}
