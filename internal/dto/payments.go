package dto

import "storefront-api/internal/service"

// PaymentCustomerRequest identifies the payer on the gateway's hosted page.
type PaymentCustomerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phonenumber"`
	Name        string `json:"name" binding:"required"`
}

// InitializePaymentRequest starts a hosted payment for an existing order.
type InitializePaymentRequest struct {
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	Currency    string                 `json:"currency" binding:"omitempty,len=3"`
	RedirectURL string                 `json:"redirectUrl" binding:"required,url"`
	OrderNumber string                 `json:"orderNumber" binding:"required"`
	Customer    PaymentCustomerRequest `json:"customer" binding:"required"`
}

func (r InitializePaymentRequest) ToInput() service.InitiatePaymentInput {
	return service.InitiatePaymentInput{
		Amount:      r.Amount,
		Currency:    r.Currency,
		RedirectURL: r.RedirectURL,
		OrderNumber: r.OrderNumber,
		Customer: service.GatewayCustomer{
			Email:       r.Customer.Email,
			PhoneNumber: r.Customer.PhoneNumber,
			Name:        r.Customer.Name,
		},
	}
}

// VerifyPaymentRequest confirms a gateway redirect against the recorded
// payment intent.
type VerifyPaymentRequest struct {
	TxRef         string `json:"tx_ref" binding:"required"`
	TransactionID int64  `json:"transaction_id" binding:"required"`
}

// ShipOrderRequest marks a paid order as shipped with a tracking number.
type ShipOrderRequest struct {
	OrderNumber    string `json:"orderNumber" binding:"required"`
	TrackingNumber string `json:"trackingNumber" binding:"required"`
}
