package stock

import "context"

// Ledger owns the per-product available quantities. Implementations must
// serialize debits on the same product id.
type Ledger interface {
	Get(ctx context.Context, productID int) (Entry, error)
	// List returns all entries ordered by product id.
	List(ctx context.Context) ([]Entry, error)
	// Debit subtracts amount from the product's quantity and returns the new
	// quantity. The subtraction is unchecked: the result may go negative.
	Debit(ctx context.Context, productID, amount int) (int, error)
	// DebitAll applies a set of debits as one unit: every product id is
	// checked against the ledger first, and a missing id fails the whole call
	// with ErrNotFound before any quantity changes.
	DebitAll(ctx context.Context, lines []Line) ([]Entry, error)
}
