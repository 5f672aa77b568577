package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testCatalog() []domain.Product {
	avocado := product("Organic Avocado", "2.49", intPtr(10))
	bread := product("Sourdough Bread", "4.50", nil)
	bread.Category = "Bakery"
	salmon := product("Atlantic Salmon Fillet", "12.99", nil)
	salmon.Category = "Seafood"
	spinach := product("Organic Baby Spinach", "3.49", intPtr(15))
	spinach.Category = "Vegetables"
	return []domain.Product{avocado, bread, salmon, spinach}
}

func TestFilter(t *testing.T) {
	catalog := testCatalog()

	t.Run("empty criteria matches everything in order", func(t *testing.T) {
		got := Filter(catalog, Criteria{})
		assert.Equal(t, catalog, got)
	})

	t.Run("search is a case-insensitive substring match on name", func(t *testing.T) {
		got := Filter(catalog, Criteria{SearchText: "organic"})
		assert.Len(t, got, 2)
		assert.Equal(t, "Organic Avocado", got[0].Name)
		assert.Equal(t, "Organic Baby Spinach", got[1].Name)
	})

	t.Run("category membership is case-insensitive", func(t *testing.T) {
		got := Filter(catalog, Criteria{Categories: []string{"fruits"}})
		assert.Len(t, got, 1)
		assert.Equal(t, "Organic Avocado", got[0].Name)
	})

	t.Run("price bounds apply to the discounted price", func(t *testing.T) {
		// Avocado lists at 2.49 but sells at 2.241, so max_price=2.30
		// still includes it.
		got := Filter(catalog, Criteria{MaxPrice: decPtr("2.30")})
		assert.Len(t, got, 1)
		assert.Equal(t, "Organic Avocado", got[0].Name)
	})

	t.Run("criteria are conjunctive", func(t *testing.T) {
		got := Filter(catalog, Criteria{
			SearchText: "organic",
			Categories: []string{"vegetables"},
			MinPrice:   decPtr("1.00"),
			MaxPrice:   decPtr("5.00"),
		})
		assert.Len(t, got, 1)
		assert.Equal(t, "Organic Baby Spinach", got[0].Name)
	})

	t.Run("inverted price range matches nothing", func(t *testing.T) {
		got := Filter(catalog, Criteria{MinPrice: decPtr("5"), MaxPrice: decPtr("3")})
		assert.Empty(t, got)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		criteria := Criteria{SearchText: "a", MinPrice: decPtr("2"), MaxPrice: decPtr("13")}
		once := Filter(catalog, criteria)
		twice := Filter(once, criteria)
		assert.Equal(t, once, twice)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := testCatalog()
		Filter(catalog, Criteria{Categories: []string{"bakery"}})
		assert.Equal(t, before, catalog)
	})

	t.Run("malformed product is excluded from price-bounded results", func(t *testing.T) {
		bad := product("Corrupt Row", "3.00", intPtr(250))
		withBad := append(testCatalog(), bad)
		got := Filter(withBad, Criteria{MinPrice: decPtr("0.01")})
		for _, p := range got {
			assert.NotEqual(t, "Corrupt Row", p.Name)
		}
		// Without price bounds it still lists; only arithmetic excludes it.
		got = Filter(withBad, Criteria{SearchText: "corrupt"})
		assert.Len(t, got, 1)
	})
}
