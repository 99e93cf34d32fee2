package memory

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
)

// OrderRepository keys orders by client-supplied id. Saving an existing id
// replaces the stored order in place, keeping its original List position.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[int]*domain.Order
	seq    []int
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[int]*domain.Order),
	}
}

func (r *OrderRepository) Save(ctx context.Context, o *domain.Order) error {
	_ = ctx
	if o == nil {
		return fmt.Errorf("order repository: order is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID]; !exists {
		r.seq = append(r.seq, o.ID)
	}
	r.orders[o.ID] = o.Clone()
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o.Clone(), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Order, 0, len(r.seq))
	for _, id := range r.seq {
		out = append(out, r.orders[id].Clone())
	}
	return out, nil
}
