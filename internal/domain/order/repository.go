package order

import "context"

type Repository interface {
	// Save inserts the order, or silently replaces an existing order with the
	// same id. Insertion position is preserved on replace so List stays
	// deterministic.
	Save(ctx context.Context, o *Order) error
	Get(ctx context.Context, orderID int) (*Order, error)
	// List returns all orders in insertion order.
	List(ctx context.Context) ([]*Order, error)
}
