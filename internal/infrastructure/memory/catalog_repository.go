package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/catalog"
)

type CatalogRepository struct {
	mu       sync.RWMutex
	products map[int]domain.Product
}

func NewCatalogRepository(seed []domain.Product) *CatalogRepository {
	products := make(map[int]domain.Product, len(seed))
	for _, p := range seed {
		products[p.ID] = p
	}
	return &CatalogRepository{products: products}
}

func (r *CatalogRepository) Get(ctx context.Context, productID int) (domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
