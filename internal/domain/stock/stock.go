package stock

import "errors"

var (
	ErrNotFound        = errors.New("stock: product not found")
	ErrInvalidQuantity = errors.New("stock: quantity must be greater than zero")
)

// Entry is the ledger record for one product: the globally available
// quantity. The ledger is the single source of truth; location views are
// derived from it.
type Entry struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Line pairs a product with a debit amount, one order line.
type Line struct {
	ProductID int
	Quantity  int
}
