package memory

import (
	"context"
	"sync"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/payment"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[int]domain.Payment
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[int]domain.Payment),
	}
}

func (r *PaymentRepository) Save(ctx context.Context, p domain.Payment) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.payments[p.OrderID] = p
	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, orderID int) (domain.Payment, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[orderID]
	if !ok {
		return domain.Payment{}, domain.ErrNotFound
	}
	return p, nil
}
