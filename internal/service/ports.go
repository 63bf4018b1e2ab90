package service

import (
	"context"

	"storefront-api/internal/shipping"
)

// ShippingResolver is the static zone table (see internal/shipping).
type ShippingResolver interface {
	ZonesFor(country string) shipping.ZonesResponse
	CountriesInZone(zone string) []string
	Countries() []string
}

type GatewayCustomer struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber"`
	Name        string `json:"name"`
}

type CreatePaymentRequest struct {
	TxRef       string
	Amount      float64
	Currency    string
	RedirectURL string
	Customer    GatewayCustomer
}

type CreatePaymentResult struct {
	Link string
}

// GatewayTransaction is the provider's view of a completed transaction,
// cross-checked against the locally stored expectation.
type GatewayTransaction struct {
	ID       int64
	TxRef    string
	Amount   float64
	Currency string
	Status   string
}

// PaymentGateway wraps the external payment provider HTTP API.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (CreatePaymentResult, error)
	VerifyTransaction(ctx context.Context, transactionID int64) (GatewayTransaction, error)
}
