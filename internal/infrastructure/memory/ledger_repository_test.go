package memory

import (
	"context"
	"sync"
	"testing"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() *LedgerRepository {
	return NewLedgerRepository([]domain.Entry{
		{ProductID: 2, Quantity: 120},
		{ProductID: 4, Quantity: 80},
	})
}

func TestLedgerGet(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	e, err := ledger.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Entry{ProductID: 2, Quantity: 120}, e)

	_, err = ledger.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerDebit(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	remaining, err := ledger.Debit(ctx, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 115, remaining)

	_, err = ledger.Debit(ctx, 99, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerDebitMayGoNegative(t *testing.T) {
	ledger := newTestLedger()

	remaining, err := ledger.Debit(context.Background(), 4, 100)
	require.NoError(t, err)
	assert.Equal(t, -20, remaining)
}

func TestLedgerDebitAll(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	entries, err := ledger.DebitAll(ctx, []domain.Line{
		{ProductID: 2, Quantity: 5},
		{ProductID: 4, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{
		{ProductID: 2, Quantity: 115},
		{ProductID: 4, Quantity: 78},
	}, entries)
}

func TestLedgerDebitAllIsAtomic(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	_, err := ledger.DebitAll(ctx, []domain.Line{
		{ProductID: 2, Quantity: 5},
		{ProductID: 99, Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Nothing was debited, including the valid line.
	e, err := ledger.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 120, e.Quantity)
}

func TestLedgerDebitSerializes(t *testing.T) {
	ledger := NewLedgerRepository([]domain.Entry{{ProductID: 1, Quantity: 10_000}})
	ctx := context.Background()

	const workers = 50
	const debitsPerWorker = 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < debitsPerWorker; j++ {
				_, _ = ledger.Debit(ctx, 1, 1)
			}
		}()
	}
	wg.Wait()

	e, err := ledger.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 10_000-workers*debitsPerWorker, e.Quantity)
}
