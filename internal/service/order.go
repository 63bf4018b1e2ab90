package service

import (
	"context"

	"github.com/google/uuid"
)

type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type OrderItemInput struct {
	ProductID   string
	VariantID   int64
	ProductName string
	VariantName string
	Quantity    int
	UnitPrice   float64
	LineTotal   float64
	Image       string
}

type ShippingInfo struct {
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// CreateOrderInput is the client's priced order. The snapshot is stored
// verbatim; it is not re-validated against the live catalog here.
type CreateOrderInput struct {
	Subtotal       float64
	TaxPercentage  float64
	TaxAmount      float64
	ShippingType   string
	ShippingAmount float64
	OrderTotal     float64
	Currency       string

	Customer CustomerInfo
	Items    []OrderItemInput
	Shipping ShippingInfo
}

type CreateOrderResponse struct {
	Message     string    `json:"message"`
	FullName    string    `json:"fullName"`
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	PaymentLink string    `json:"paymentLink"`
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResponse, error)
}
