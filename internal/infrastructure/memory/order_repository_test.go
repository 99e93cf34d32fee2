package memory

import (
	"context"
	"testing"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, id, userID int, productIDs, quantities []int, locationID int) *domain.Order {
	t.Helper()
	o, err := domain.New(id, userID, productIDs, quantities, locationID)
	require.NoError(t, err)
	return o
}

func TestOrderSaveAndGet(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := mustOrder(t, 999, 1, []int{2, 4}, []int{5, 2}, 1)
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.Get(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, 999, got.ID)
	assert.Equal(t, []int{2, 4}, got.ProductIDs)
	assert.Equal(t, []int{5, 2}, got.Quantities)

	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderListInsertionOrder(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	for _, id := range []int{30, 10, 20} {
		require.NoError(t, repo.Save(ctx, mustOrder(t, id, 1, []int{1}, []int{1}, 1)))
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int{30, 10, 20}, ids)
}

func TestOrderSaveReplacesKeepingPosition(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustOrder(t, 1, 1, []int{1}, []int{1}, 1)))
	require.NoError(t, repo.Save(ctx, mustOrder(t, 2, 1, []int{1}, []int{1}, 1)))
	require.NoError(t, repo.Save(ctx, mustOrder(t, 1, 7, []int{3}, []int{9}, 2)))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 7, orders[0].UserID)
	assert.Equal(t, []int{3}, orders[0].ProductIDs)
}

func TestOrderGetReturnsClone(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, mustOrder(t, 1, 1, []int{1, 2}, []int{1, 1}, 1)))

	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	got.ProductIDs[0] = 42

	again, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again.ProductIDs)
}
