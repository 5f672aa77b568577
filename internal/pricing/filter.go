package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

// Criteria describes a conjunctive catalog filter. Absent fields match
// everything for their dimension.
type Criteria struct {
	SearchText string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// Filter returns the products matching every provided criterion, in input
// order. Price bounds are checked against the discounted effective price,
// because that is what the customer pays. The input slice is not mutated;
// an inverted range (min > max) simply matches nothing.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(c.SearchText))
	categories := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat != "" {
			categories[cat] = struct{}{}
		}
	}

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[strings.ToLower(p.Category)]; !ok {
				continue
			}
		}
		if c.MinPrice != nil || c.MaxPrice != nil {
			price, err := EffectivePrice(p)
			if err != nil {
				// Malformed rows never match a price-bounded query.
				continue
			}
			if c.MinPrice != nil && price.LessThan(*c.MinPrice) {
				continue
			}
			if c.MaxPrice != nil && price.GreaterThan(*c.MaxPrice) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}
