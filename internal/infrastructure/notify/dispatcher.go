package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/neftalics/Lab01-Inkafarma-Software/internal/domain/order"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability/logctx"
)

const componentDispatcher = "notify_dispatcher"

var (
	ErrQueueFull = errors.New("notify: queue full, event dropped")
	ErrStopped   = errors.New("notify: dispatcher stopped")
)

// Dispatcher decouples order creation from the outbound channel: Publish
// enqueues without blocking and a single goroutine drains the queue into the
// sink. A full queue drops the event; delivery failures are logged and
// counted, never retried.
type Dispatcher struct {
	queue        chan order.CreatedEvent
	sink         Sink
	writeTimeout time.Duration

	startOnce sync.Once
	stopOnce  sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
	stopped   atomic.Bool

	log     observability.Logger
	failed  observability.Counter
	dropped observability.Counter
}

// Sink is the outbound channel the dispatcher delivers to.
type Sink interface {
	Write(ctx context.Context, key string, payload []byte) error
	Close() error
}

func NewDispatcher(sink Sink, buffer int, writeTimeout time.Duration, tel observability.Telemetry) *Dispatcher {
	if buffer <= 0 {
		buffer = 1024
	}
	if tel == nil {
		tel = observability.NopTelemetry()
	}
	return &Dispatcher{
		queue:        make(chan order.CreatedEvent, buffer),
		sink:         sink,
		writeTimeout: writeTimeout,
		done:         make(chan struct{}),
		log:          tel.Logger().With(observability.F("component", componentDispatcher)),
		failed:       tel.Counter(observability.MNotifyPublishFailed),
		dropped:      tel.Counter(observability.MNotifyPublishDropped),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.startOnce.Do(func() {
		bg, cancel := context.WithCancel(context.WithoutCancel(ctx))
		d.cancel = cancel
		go d.dispatchLoop(bg)
		logctx.FromOr(ctx, d.log).Info("dispatcher_started")
	})
}

// Stop drains nothing: queued events not yet delivered are discarded, which
// is acceptable for a best-effort channel.
func (d *Dispatcher) Stop(ctx context.Context) {
	d.stopOnce.Do(func() {
		d.stopped.Store(true)
		if d.cancel != nil {
			d.cancel()
		}
		<-d.done
		if d.sink != nil {
			if err := d.sink.Close(); err != nil {
				d.log.Warn("sink_close_failed", observability.F("error", err.Error()))
			}
		}
		logctx.FromOr(ctx, d.log).Info("dispatcher_stopped")
	})
}

// Publish enqueues the event without blocking. It returns an error only so
// callers can log it; order creation must never fail on it.
func (d *Dispatcher) Publish(ctx context.Context, e order.CreatedEvent) error {
	if d.stopped.Load() {
		d.dropped.Add(1)
		logctx.FromOr(ctx, d.log).Warn("event_dropped_stopped",
			observability.F("order_id", e.OrderID),
		)
		return ErrStopped
	}
	select {
	case d.queue <- e:
		logctx.FromOr(ctx, d.log).Debug("event_enqueued",
			observability.F("order_id", e.OrderID),
		)
		return nil
	default:
		d.dropped.Add(1)
		logctx.FromOr(ctx, d.log).Warn("event_dropped_queue_full",
			observability.F("order_id", e.OrderID),
		)
		return ErrQueueFull
	}
}

func (d *Dispatcher) dispatchLoop(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-d.queue:
			d.deliver(ctx, e)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, e order.CreatedEvent) {
	payload, err := json.Marshal(e)
	if err != nil {
		d.failed.Add(1)
		d.log.Error("event_encode_failed",
			observability.F("order_id", e.OrderID),
			observability.F("error", err.Error()),
		)
		return
	}

	writeCtx := ctx
	if d.writeTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(ctx, d.writeTimeout)
		defer cancel()
	}

	if err := d.sink.Write(writeCtx, strconv.Itoa(e.OrderID), payload); err != nil {
		d.failed.Add(1)
		d.log.Error("event_publish_failed",
			observability.F("order_id", e.OrderID),
			observability.F("error", err.Error()),
		)
		return
	}

	d.log.Info("event_published",
		observability.F("order_id", e.OrderID),
		observability.F("message_id", e.MessageID),
	)
}
