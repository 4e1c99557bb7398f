package kafka

import (
	"context"
	"encoding/json"
	"time"

	"paynotify/internal/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher implements events.Dispatcher on top of a Kafka topic. One
// message per transition, keyed by order id so all events for an order
// land in the same partition.
type Publisher struct {
	logger *zap.Logger
	writer *kafka.Writer
	topic  string
}

func NewPublisher(logger *zap.Logger, brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Publisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func (p *Publisher) Emit(ctx context.Context, event string, ord order.Order) error {
	payload := map[string]interface{}{
		"event_id":       uuid.New().String(),
		"event_type":     event,
		"event_version":  1,
		"occurred_at":    time.Now().UTC().Format(time.RFC3339),
		"order_id":       ord.ID,
		"order_status":   ord.Status,
		"payment_method": ord.PaymentMethod,
		"charge_id":      ord.ChargeID,
	}

	valueBytes, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to marshal order event",
			zap.Error(err),
			zap.String("event", event),
			zap.String("order_id", ord.ID),
		)
		return err
	}

	message := kafka.Message{
		Key:   []byte(ord.ID),
		Value: valueBytes,
	}

	err = p.writer.WriteMessages(ctx, message)
	if err != nil {
		p.logger.Error("failed to publish order event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("event", event),
			zap.String("order_id", ord.ID),
		)
		return err
	}

	p.logger.Info("order event published",
		zap.String("topic", p.topic),
		zap.String("event", event),
		zap.String("order_id", ord.ID),
	)

	return nil
}
