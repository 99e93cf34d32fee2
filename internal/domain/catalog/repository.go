package catalog

import "context"

type Repository interface {
	Get(ctx context.Context, productID int) (Product, error)
	// List returns all products ordered by id.
	List(ctx context.Context) ([]Product, error)
}
