// Package event publishes storefront domain events. Publishing is best
// effort: failures are logged and never fail the user operation, and a nil
// producer is a valid no-op so tests and broker-less deployments need no
// wiring.
package event

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

const (
	TopicOrderPlaced = "storefront.order.placed"
	TopicCartUpdated = "storefront.cart.updated"

	source = "storefront"
)

// Producer publishes order and cart events to Kafka.
type Producer struct {
	producer *kafka.Producer
	log      *slog.Logger
}

// NewProducer builds a producer for the given brokers. Returns nil when no
// brokers are configured; a nil *Producer is safe to call.
func NewProducer(brokers []string, log *slog.Logger) *Producer {
	if len(brokers) == 0 {
		return nil
	}

	return &Producer{
		producer: kafka.NewProducer(kafka.DefaultProducerConfig(brokers), log),
		log:      log,
	}
}

// OrderPlacedEvent is the payload published when a checkout completes.
type OrderPlacedEvent struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	SessionID   string `json:"session_id"`
	ItemCount   int    `json:"item_count"`
	Total       int64  `json:"total"`
}

// CartUpdatedEvent is the payload published after any cart mutation.
type CartUpdatedEvent struct {
	SessionID string `json:"session_id"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
}

// OrderPlaced publishes an order-placed event. Best effort.
func (p *Producer) OrderPlaced(ctx context.Context, order domain.Order, sessionID string) {
	if p == nil {
		return
	}

	items := 0
	for _, item := range order.Items {
		items += item.Quantity
	}

	p.publish(ctx, TopicOrderPlaced, "order.placed", order.ID, "order", OrderPlacedEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		SessionID:   sessionID,
		ItemCount:   items,
		Total:       order.Total,
	})
}

// CartUpdated publishes a cart-updated event. Best effort.
func (p *Producer) CartUpdated(ctx context.Context, cart *domain.Cart) {
	if p == nil {
		return
	}

	p.publish(ctx, TopicCartUpdated, "cart.updated", cart.SessionID, "cart", CartUpdatedEvent{
		SessionID: cart.SessionID,
		ItemCount: cart.ItemCount(),
		Total:     cart.TotalAmount(),
	})
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, payload any) {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, payload)
	if err != nil {
		p.log.Error("build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}
	evt.CorrelationID = logger.CorrelationIDFromContext(ctx)

	if err := p.producer.Publish(ctx, topic, evt); err != nil {
		p.log.Error("publish event",
			slog.String("topic", topic),
			slog.String("aggregate_id", aggregateID),
			slog.String("error", err.Error()))
	}
}

// Close shuts the underlying writer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
