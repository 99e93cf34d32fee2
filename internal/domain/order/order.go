package order

import (
	"errors"
	"time"

	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
)

var (
	ErrNotFound        = errors.New("order: not found")
	ErrNoLines         = errors.New("order: at least one product is required")
	ErrLineMismatch    = errors.New("order: product_ids and quantities must have the same length")
	ErrInvalidQuantity = errors.New("order: quantity must be greater than zero")
)

// Order is a purchase request pending payment. Orders are immutable once
// created; the client supplies the id.
type Order struct {
	ID         int       `json:"order_id"`
	UserID     int       `json:"user_id"`
	ProductIDs []int     `json:"product_ids"`
	Quantities []int     `json:"quantity"`
	LocationID int       `json:"location_id"`
	CreatedAt  time.Time `json:"-"`
}

// New validates the positional pairing of product ids and quantities. The two
// slices are parallel: index i of one belongs to index i of the other.
func New(id, userID int, productIDs, quantities []int, locationID int) (*Order, error) {
	if len(productIDs) == 0 {
		return nil, ErrNoLines
	}
	if len(productIDs) != len(quantities) {
		return nil, ErrLineMismatch
	}
	for _, q := range quantities {
		if q <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	return &Order{
		ID:         id,
		UserID:     userID,
		ProductIDs: append([]int(nil), productIDs...),
		Quantities: append([]int(nil), quantities...),
		LocationID: locationID,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Lines pairs up the order's products and quantities by position.
func (o *Order) Lines() []stock.Line {
	lines := make([]stock.Line, len(o.ProductIDs))
	for i, pid := range o.ProductIDs {
		lines[i] = stock.Line{ProductID: pid, Quantity: o.Quantities[i]}
	}
	return lines
}

// Clone returns a deep copy so repository callers cannot alias stored state.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.ProductIDs = append([]int(nil), o.ProductIDs...)
	clone.Quantities = append([]int(nil), o.Quantities...)
	return &clone
}
