package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedWrite struct {
	key     string
	payload []byte
}

type recordingSink struct {
	mu     sync.Mutex
	writes []recordedWrite
	err    error
	closed bool
	wrote  chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{wrote: make(chan struct{}, 16)}
}

func (s *recordingSink) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.wrote <- struct{}{} }()
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, recordedWrite{key: key, payload: append([]byte(nil), payload...)})
	return nil
}

func (s *recordingSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *recordingSink) snapshot() []recordedWrite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedWrite(nil), s.writes...)
}

func waitForWrite(t *testing.T, s *recordingSink) {
	t.Helper()
	select {
	case <-s.wrote:
	case <-time.After(2 * time.Second):
		t.Fatal("sink write did not happen in time")
	}
}

func TestDispatcherDeliversToSink(t *testing.T) {
	sink := newRecordingSink()
	d := NewDispatcher(sink, 8, time.Second, nil)
	ctx := context.Background()
	d.Start(ctx)
	defer d.Stop(ctx)

	e := order.CreatedEvent{MessageID: "m-1", OrderID: 999, UserID: 1, ProductIDs: []int{2, 4}, Quantities: []int{5, 2}, LocationID: 1}
	require.NoError(t, d.Publish(ctx, e))
	waitForWrite(t, sink)

	writes := sink.snapshot()
	require.Len(t, writes, 1)
	assert.Equal(t, "999", writes[0].key)

	var decoded order.CreatedEvent
	require.NoError(t, json.Unmarshal(writes[0].payload, &decoded))
	assert.Equal(t, "m-1", decoded.MessageID)
	assert.Equal(t, []int{5, 2}, decoded.Quantities)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sink := newRecordingSink()
	d := NewDispatcher(sink, 1, time.Second, nil)
	// Not started: nothing drains the queue.
	ctx := context.Background()

	require.NoError(t, d.Publish(ctx, order.CreatedEvent{OrderID: 1}))
	err := d.Publish(ctx, order.CreatedEvent{OrderID: 2})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestDispatcherRejectsAfterStop(t *testing.T) {
	sink := newRecordingSink()
	d := NewDispatcher(sink, 8, time.Second, nil)
	ctx := context.Background()
	d.Start(ctx)
	d.Stop(ctx)

	err := d.Publish(ctx, order.CreatedEvent{OrderID: 3})
	assert.ErrorIs(t, err, ErrStopped)
	assert.True(t, sink.closed)
}

func TestDispatcherSurvivesSinkFailure(t *testing.T) {
	sink := newRecordingSink()
	sink.err = errors.New("broker unreachable")
	d := NewDispatcher(sink, 8, time.Second, nil)
	ctx := context.Background()
	d.Start(ctx)
	defer d.Stop(ctx)

	require.NoError(t, d.Publish(ctx, order.CreatedEvent{OrderID: 4}))
	waitForWrite(t, sink)

	// The failed event was not recorded and the loop keeps going.
	sink.mu.Lock()
	sink.err = nil
	sink.mu.Unlock()
	require.NoError(t, d.Publish(ctx, order.CreatedEvent{OrderID: 5}))
	waitForWrite(t, sink)

	writes := sink.snapshot()
	require.Len(t, writes, 1)
	assert.Equal(t, "5", writes[0].key)
}
