package order

import (
	"context"
	"errors"
	"testing"

	domain "github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	events []domain.CreatedEvent
	err    error
}

func (p *capturePublisher) Publish(_ context.Context, e domain.CreatedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func TestCreateOrderStoresAndPublishes(t *testing.T) {
	repo := memory.NewOrderRepository()
	pub := &capturePublisher{}
	svc := NewService(repo, pub, nil)
	ctx := context.Background()

	err := svc.CreateOrder(ctx, CreateOrderInput{
		OrderID:    999,
		UserID:     1,
		ProductIDs: []int{2, 4},
		Quantities: []int{5, 2},
		LocationID: 1,
	})
	require.NoError(t, err)

	stored, err := repo.Get(ctx, 999)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, stored.ProductIDs)

	require.Len(t, pub.events, 1)
	e := pub.events[0]
	assert.Equal(t, 999, e.OrderID)
	assert.Equal(t, []int{5, 2}, e.Quantities)
	assert.NotEmpty(t, e.MessageID)
	assert.Equal(t, "order.created", e.EventName())
}

func TestCreateOrderRejectsLineMismatch(t *testing.T) {
	svc := NewService(memory.NewOrderRepository(), &capturePublisher{}, nil)

	err := svc.CreateOrder(context.Background(), CreateOrderInput{
		OrderID:    1,
		UserID:     1,
		ProductIDs: []int{2, 4},
		Quantities: []int{5},
		LocationID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrLineMismatch)
}

func TestCreateOrderRejectsEmptyLines(t *testing.T) {
	svc := NewService(memory.NewOrderRepository(), &capturePublisher{}, nil)

	err := svc.CreateOrder(context.Background(), CreateOrderInput{OrderID: 1, UserID: 1, LocationID: 1})
	assert.ErrorIs(t, err, domain.ErrNoLines)
}

func TestCreateOrderSwallowsPublishFailure(t *testing.T) {
	repo := memory.NewOrderRepository()
	pub := &capturePublisher{err: errors.New("broker down")}
	svc := NewService(repo, pub, nil)
	ctx := context.Background()

	err := svc.CreateOrder(ctx, CreateOrderInput{
		OrderID:    2,
		UserID:     1,
		ProductIDs: []int{1},
		Quantities: []int{1},
		LocationID: 1,
	})
	require.NoError(t, err)

	// The order is there even though the announcement was lost.
	_, err = repo.Get(ctx, 2)
	assert.NoError(t, err)
}

func TestListOrdersKeepsInsertionOrder(t *testing.T) {
	repo := memory.NewOrderRepository()
	svc := NewService(repo, &capturePublisher{}, nil)
	ctx := context.Background()

	for _, id := range []int{12, 7, 9} {
		require.NoError(t, svc.CreateOrder(ctx, CreateOrderInput{
			OrderID:    id,
			UserID:     1,
			ProductIDs: []int{1},
			Quantities: []int{1},
			LocationID: 1,
		}))
	}

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int{12, 7, 9}, ids)
}
