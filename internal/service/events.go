package service

import (
	"context"

	"storefront-api/internal/models"
)

type OrderConfirmedEvent struct {
	OrderNumber     string                 `json:"order_number"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerName    string                 `json:"customer_name"`
	Subtotal        float64                `json:"subtotal"`
	TaxPercentage   float64                `json:"tax_percentage"`
	TaxAmount       float64                `json:"tax_amount"`
	ShippingType    string                 `json:"shipping_type"`
	ShippingAmount  float64                `json:"shipping_amount"`
	OrderTotal      float64                `json:"order_total"`
	Currency        string                 `json:"currency"`
	Items           []models.OrderLineItem `json:"items"`
	ShippingAddress models.ShippingDetails `json:"shipping_address"`
}

type OrderShippedEvent struct {
	OrderNumber    string `json:"order_number"`
	CustomerEmail  string `json:"customer_email"`
	CustomerName   string `json:"customer_name"`
	TrackingNumber string `json:"tracking_number"`
}

// EventBus carries transactional email events to the notifier process.
// Publishing is fire-and-forget from the caller's perspective.
type EventBus interface {
	PublishOrderConfirmed(ctx context.Context, e OrderConfirmedEvent) error
	PublishOrderShipped(ctx context.Context, e OrderShippedEvent) error
}
