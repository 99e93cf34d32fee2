package payment

import "context"

// LocationView refreshes a location's materialized stock view from the
// ledger; satisfied by the stock application service. Refresh on an unknown
// location is a no-op.
type LocationView interface {
	Refresh(ctx context.Context, locationID int) error
}
