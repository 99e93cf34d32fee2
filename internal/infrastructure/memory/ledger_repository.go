package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
)

// LedgerRepository holds the authoritative per-product quantities. A single
// mutex serializes all debits, which also gives DebitAll its all-or-nothing
// validation window.
type LedgerRepository struct {
	mu      sync.RWMutex
	entries map[int]int
}

func NewLedgerRepository(seed []domain.Entry) *LedgerRepository {
	entries := make(map[int]int, len(seed))
	for _, e := range seed {
		entries[e.ProductID] = e.Quantity
	}
	return &LedgerRepository{entries: entries}
}

func (r *LedgerRepository) Get(ctx context.Context, productID int) (domain.Entry, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	qty, ok := r.entries[productID]
	if !ok {
		return domain.Entry{}, domain.ErrNotFound
	}
	return domain.Entry{ProductID: productID, Quantity: qty}, nil
}

func (r *LedgerRepository) List(ctx context.Context) ([]domain.Entry, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Entry, 0, len(r.entries))
	for pid, qty := range r.entries {
		out = append(out, domain.Entry{ProductID: pid, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *LedgerRepository) Debit(ctx context.Context, productID, amount int) (int, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	qty, ok := r.entries[productID]
	if !ok {
		return 0, domain.ErrNotFound
	}

	// Unchecked subtraction: the ledger may go negative.
	qty -= amount
	r.entries[productID] = qty
	return qty, nil
}

func (r *LedgerRepository) DebitAll(ctx context.Context, lines []domain.Line) ([]domain.Entry, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range lines {
		if _, ok := r.entries[line.ProductID]; !ok {
			return nil, domain.ErrNotFound
		}
	}

	out := make([]domain.Entry, 0, len(lines))
	for _, line := range lines {
		qty := r.entries[line.ProductID] - line.Quantity
		r.entries[line.ProductID] = qty
		out = append(out, domain.Entry{ProductID: line.ProductID, Quantity: qty})
	}
	return out, nil
}
