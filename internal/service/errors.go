package service

import "errors"

var (
	ErrEmptyItems        = errors.New("empty items")
	ErrQuantityInvalid   = errors.New("quantity must be > 0")
	ErrCountryRequired   = errors.New("country is required")
	ErrVariantNotFound   = errors.New("product variant not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrPriceNotFound     = errors.New("contextual price not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrMixedCurrency     = errors.New("items have mixed currencies")
	ErrTitleRequired     = errors.New("product title is required")

	ErrOrderNotFound = errors.New("order not found")

	ErrPaymentIntentNotFound = errors.New("payment intent not found")
	ErrPaymentInProcessing   = errors.New("payment is currently being processed")
	ErrPaymentAlreadyFailed  = errors.New("payment verification previously failed")
	ErrPaymentMismatch       = errors.New("payment verification mismatch")
	ErrPaymentInitFailed     = errors.New("payment initialization failed")
	ErrGatewayUnavailable    = errors.New("payment gateway unavailable")
)
