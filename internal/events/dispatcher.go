package events

import (
	"context"

	"paynotify/internal/order"

	"go.uber.org/zap"
)

const (
	OrderHeld      = "order.held_for_review"
	OrderFailed    = "order.failed"
	OrderCompleted = "order.completed"
	OrderCancelled = "order.cancelled"
)

// Dispatcher fans a transition event out to whoever consumes it. The
// notification pipeline calls Emit synchronously, always after the state
// mutation the event describes.
type Dispatcher interface {
	Emit(ctx context.Context, event string, ord order.Order) error
}

// LogDispatcher is the broker-less Dispatcher used when no Kafka cluster
// is configured. Events are only written to the service log.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Emit(ctx context.Context, event string, ord order.Order) error {
	d.logger.Info("order event emitted",
		zap.String("event", event),
		zap.String("order_id", ord.ID),
		zap.String("status", ord.Status),
	)
	return nil
}
