package payment

import "errors"

var (
	// ErrAlreadyPaid is returned when reprocessing a paid order while the
	// reprocessing guard is active.
	ErrAlreadyPaid = errors.New("payment: order already paid")
	ErrNotFound    = errors.New("payment: not found")
)

// Payment records the outcome of processing an order. The status label is
// free-form; "Paid" carries no special meaning beyond the record's existence.
type Payment struct {
	OrderID int    `json:"order_id"`
	Status  string `json:"status"`
}
