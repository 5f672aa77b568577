package domain

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationResult lists every violated field rule. It is a value, not an
// error: expected bad input from the add-product form is data, and the UI
// renders one message per field.
type ValidationResult struct {
	Violations []FieldViolation `json:"violations,omitempty"`
}

func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

func (r *ValidationResult) add(field, reason string) {
	r.Violations = append(r.Violations, FieldViolation{Field: field, Reason: reason})
}

// ValidateProduct checks a product candidate against the data model
// invariants. This is the entry boundary: anything that passes here is safe
// for the pricing engine.
func ValidateProduct(req CreateProductRequest) ValidationResult {
	var res ValidationResult

	if utf8.RuneCountInString(req.Name) < 3 {
		res.add("name", "product name must be at least 3 characters")
	}
	if !req.Price.IsPositive() {
		res.add("price", "price must be a positive number")
	}
	if strings.TrimSpace(req.Unit) == "" {
		res.add("unit", "unit is required (e.g. kg, piece, liter)")
	}
	if utf8.RuneCountInString(req.Category) < 3 {
		res.add("category", "category must be at least 3 characters")
	}
	if req.ImageURL != "" {
		u, err := url.Parse(req.ImageURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			res.add("image_url", "image URL must be a valid URL or empty")
		}
	}
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount > 100) {
		res.add("discount", "discount must be between 0 and 100")
	}

	return res
}
