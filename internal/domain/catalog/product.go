package catalog

import "errors"

var ErrNotFound = errors.New("catalog: product not found")

// Product is a catalog record. Products are seeded at startup and read-only
// afterwards; identity is assigned externally.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}
