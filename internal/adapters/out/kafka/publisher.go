// Package kafka publishes order lifecycle events to a Kafka topic.
// The publisher implements ports.OrderEventPublisher and is handed to the
// unit of work, which calls it after each successful commit. Delivery is
// best effort from the caller's point of view: the unit of work logs and
// swallows publish errors.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"cctexpress/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher writes order status events to a single Kafka topic.
// Events are keyed by order ID so one order's history stays in a single
// partition and consumers observe its transitions in commit order.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher for the given brokers and topic.
// Brokers is a comma separated host:port list.
func NewOrderEventPublisher(brokers, topic string, logger *slog.Logger) *OrderEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(parseBrokers(brokers)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &OrderEventPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_publisher"),
	}
}

// PublishStatusChanged emits one status change event as a JSON message.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.OccurredAt,
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "Order status event published",
		"order_id", event.OrderID, "status", event.Status)
	return nil
}

// Close flushes buffered messages and releases the writer's connections.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func parseBrokers(brokers string) []string {
	parsed := make([]string, 0)
	for _, broker := range strings.Split(brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			parsed = append(parsed, broker)
		}
	}
	return parsed
}
