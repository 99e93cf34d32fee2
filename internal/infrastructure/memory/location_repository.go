package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/location"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
)

type LocationRepository struct {
	mu        sync.RWMutex
	locations map[int]*domain.Location
}

func NewLocationRepository(seed []*domain.Location) *LocationRepository {
	locations := make(map[int]*domain.Location, len(seed))
	for _, l := range seed {
		locations[l.ID] = cloneLocation(l)
	}
	return &LocationRepository{locations: locations}
}

func (r *LocationRepository) Get(ctx context.Context, locationID int) (*domain.Location, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.locations[locationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneLocation(l), nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Location, 0, len(r.locations))
	for _, l := range r.locations {
		out = append(out, cloneLocation(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *LocationRepository) ReplaceStock(ctx context.Context, locationID int, entries []stock.Entry) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locations[locationID]
	if !ok {
		return domain.ErrNotFound
	}
	l.Stock = append([]stock.Entry(nil), entries...)
	return nil
}

func cloneLocation(l *domain.Location) *domain.Location {
	if l == nil {
		return nil
	}
	clone := *l
	clone.Carried = append([]int(nil), l.Carried...)
	clone.Stock = append([]stock.Entry(nil), l.Stock...)
	return &clone
}
