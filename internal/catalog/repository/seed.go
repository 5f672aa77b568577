package repository

import (
	"github.com/shopspring/decimal"

	"github.com/freshgrocer/storefront-service/internal/catalog/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func seedProduct(name, price, unit, category, imageURL string, discount *int) domain.Product {
	return domain.Product{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Unit:     unit,
		Category: category,
		ImageURL: strPtr(imageURL),
		Discount: discount,
	}
}

// SeedProducts is the development catalog served when no database is
// configured.
func SeedProducts() []domain.Product {
	return []domain.Product{
		seedProduct("Organic Avocado", "2.49", "each", "Fruits",
			"https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?q=80&w=1975&auto=format&fit=crop", intPtr(10)),
		seedProduct("Fresh Strawberries", "4.99", "basket (250g)", "Fruits",
			"https://images.unsplash.com/photo-1464965911861-746a04b4bca6?q=80&w=2070&auto=format&fit=crop", nil),
		seedProduct("Organic Whole Milk", "3.79", "1 gallon", "Dairy",
			"https://images.unsplash.com/photo-1563636619-e9143da7973b?q=80&w=1972&auto=format&fit=crop", intPtr(5)),
		seedProduct("Sourdough Bread", "4.50", "1 loaf (500g)", "Bakery",
			"https://images.unsplash.com/photo-1555951015-6da1bcbb304d?q=80&w=1972&auto=format&fit=crop", nil),
		seedProduct("Free-Range Eggs", "5.29", "dozen", "Dairy",
			"https://images.unsplash.com/photo-1506976785307-8732e854ad03?q=80&w=1974&auto=format&fit=crop", nil),
		seedProduct("Organic Baby Spinach", "3.49", "bag (200g)", "Vegetables",
			"https://images.unsplash.com/photo-1576045057995-568f588f82fb?q=80&w=2080&auto=format&fit=crop", intPtr(15)),
		seedProduct("Atlantic Salmon Fillet", "12.99", "per lb", "Seafood",
			"https://images.unsplash.com/photo-1499125562588-29fb8a56b5d5?q=80&w=1932&auto=format&fit=crop", nil),
		seedProduct("Organic Bananas", "1.99", "bunch", "Fruits",
			"https://images.unsplash.com/photo-1543218024-57a70143c369?q=80&w=1935&auto=format&fit=crop", nil),
		seedProduct("Grass-Fed Ground Beef", "8.99", "per lb", "Meat",
			"https://images.unsplash.com/photo-1607623814075-e51df1bdc82f?q=80&w=2070&auto=format&fit=crop", nil),
		seedProduct("Organic Carrots", "2.29", "bunch", "Vegetables",
			"https://images.unsplash.com/photo-1447175008436-054170c2e979?q=80&w=2012&auto=format&fit=crop", nil),
		seedProduct("Greek Yogurt", "4.79", "32 oz", "Dairy",
			"https://images.unsplash.com/photo-1488477181946-6428a0291777?q=80&w=1937&auto=format&fit=crop", nil),
		seedProduct("Organic Honeycrisp Apples", "3.99", "per lb", "Fruits",
			"https://images.unsplash.com/photo-1570913149827-d2ac84ab3f9a?q=80&w=2070&auto=format&fit=crop", intPtr(5)),
	}
}
