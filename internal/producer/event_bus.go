package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-api/internal/service"
)

// EventBus adapts the kafka email producer to the service event port.
// Each event becomes one templated email message keyed by order number.
type EventBus struct {
	producer *EmailProducer
}

func NewEventBus(p *EmailProducer) *EventBus {
	return &EventBus{producer: p}
}

func (b *EventBus) PublishOrderConfirmed(ctx context.Context, e service.OrderConfirmedEvent) error {
	data, err := toMap(e)
	if err != nil {
		return err
	}
	return b.producer.SendEmail(ctx, e.OrderNumber, EmailMessage{
		To:       e.CustomerEmail,
		Subject:  "Your order has been received",
		Template: "customer_receipt",
		Data:     data,
	})
}

func (b *EventBus) PublishOrderShipped(ctx context.Context, e service.OrderShippedEvent) error {
	data, err := toMap(e)
	if err != nil {
		return err
	}
	return b.producer.SendEmail(ctx, e.OrderNumber, EmailMessage{
		To:       e.CustomerEmail,
		Subject:  fmt.Sprintf("Order %s is on its way", e.OrderNumber),
		Template: "order_shipped",
		Data:     data,
	})
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
