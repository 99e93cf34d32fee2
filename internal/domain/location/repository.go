package location

import (
	"context"

	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
)

type Repository interface {
	Get(ctx context.Context, locationID int) (*Location, error)
	// List returns all locations ordered by id.
	List(ctx context.Context) ([]*Location, error)
	// ReplaceStock swaps a location's materialized stock view. ErrNotFound
	// when the location does not exist.
	ReplaceStock(ctx context.Context, locationID int, entries []stock.Entry) error
}
