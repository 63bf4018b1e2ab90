package service

import (
	"context"

	"storefront-api/internal/shipping"
)

type CheckoutItem struct {
	VariantID int64
	Quantity  int
}

type CheckoutInput struct {
	Items   []CheckoutItem
	Country string
}

// CheckoutProduct is the human-readable per-line summary in the response.
type CheckoutProduct struct {
	Name       string  `json:"name"`
	Variant    string  `json:"variant"`
	Currency   string  `json:"currency"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// ShippingQuote is one selectable zone with its own grand total.
type ShippingQuote struct {
	Zone           string          `json:"zone"`
	ZoneName       string          `json:"zoneName"`
	States         []string        `json:"states"`
	ShippingMethod shipping.Method `json:"shippingMethod"`
	Total          Money           `json:"total"`
}

type CheckoutResult struct {
	Total           Money             `json:"total"`
	Tax             TaxCalculation    `json:"tax"`
	ShippingOptions []ShippingQuote   `json:"shippingOptions"`
	Products        []CheckoutProduct `json:"products"`
}

type CheckoutService interface {
	CalculateCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
}
