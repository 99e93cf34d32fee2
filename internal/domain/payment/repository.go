package payment

import "context"

type Repository interface {
	// Save inserts or overwrites the payment record for the order.
	Save(ctx context.Context, p Payment) error
	Get(ctx context.Context, orderID int) (Payment, error)
}
