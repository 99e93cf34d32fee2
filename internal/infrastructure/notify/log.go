package notify

import (
	"context"

	"github.com/neftalics/Lab01-Inkafarma-Software/internal/observability"
)

// LogSink stands in for the broker when none is configured: it records each
// hand-off and always succeeds.
type LogSink struct {
	log observability.Logger
}

func NewLogSink(logger observability.Logger) *LogSink {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &LogSink{log: logger.With(observability.F("component", "notify_log_sink"))}
}

func (s *LogSink) Write(ctx context.Context, key string, payload []byte) error {
	_ = ctx
	s.log.Info("order_notification",
		observability.F("key", key),
		observability.F("payload", string(payload)),
	)
	return nil
}

func (s *LogSink) Close() error { return nil }
