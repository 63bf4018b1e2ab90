package service

import (
	"context"

	"storefront-api/internal/models"
)

type InitiatePaymentInput struct {
	Amount      float64
	Currency    string
	RedirectURL string
	OrderNumber string
	Customer    GatewayCustomer
}

type InitiatePaymentResult struct {
	Link  string `json:"link"`
	TxRef string `json:"tx_ref"`
}

type VerifyPaymentInput struct {
	TxRef         string
	TransactionID int64
}

type VerifyPaymentResult struct {
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

type ShipOrderInput struct {
	OrderNumber    string
	TrackingNumber string
}

type PaymentService interface {
	InitiatePayment(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error)
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerifyPaymentResult, error)
	ShipOrder(ctx context.Context, in ShipOrderInput) (*models.Order, error)
}
